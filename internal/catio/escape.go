package catio

// AppendEscaped appends the visible form of b under opts to dst.
// TAB and LF are governed only by ShowTabs and ShowEnds; every other
// non-printable byte only by ShowNonPrinting.
func AppendEscaped(dst []byte, b byte, opts Options) []byte {
	switch {
	case b == '\t':
		if opts.Has(ShowTabs) {
			return append(dst, '^', 'I')
		}
	case b == '\n':
		if opts.Has(ShowEnds) {
			return append(dst, '$', '\n')
		}
	case b >= 0x20 && b < 0x7f:
		// printable ASCII
	case !opts.Has(ShowNonPrinting):
		// pass through
	case b < 0x20:
		return append(dst, '^', b+64)
	case b == 0x7f:
		return append(dst, '^', '?')
	case b < 0xa0:
		return append(dst, 'M', '-', '^', b-64)
	case b < 0xff:
		return append(dst, 'M', '-', b-128)
	default:
		return append(dst, 'M', '-', '^', '?')
	}
	return append(dst, b)
}
