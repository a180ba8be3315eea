package dbfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unina-go/unina/namerange"
)

// encodeText renders the stored text for one entry, per the §6 entry text
// grammar: a bare suffix for a nonempty strict name, suffix+":"+type for
// aliases/labels, suffix+":SEQUENCE"+(":"+hex)+ for sequences, or the
// literal ":" standing in for an empty strict suffix (so that separator
// offsets stay strictly increasing).
func encodeText(nameSuffix string, nameType namerange.Type, tail []rune) string {
	var info string
	switch nameType {
	case namerange.Strict:
		info = ""
	case namerange.Sequence:
		parts := make([]string, 0, len(tail)+1)
		parts = append(parts, "SEQUENCE")
		for _, s := range tail {
			parts = append(parts, fmt.Sprintf("%04X", s))
		}
		info = strings.Join(parts, ":")
	default:
		info = nameType.String()
	}

	switch {
	case nameSuffix == "" && info == "":
		return ":"
	case info == "":
		return nameSuffix
	default:
		return nameSuffix + ":" + info
	}
}

// decodeText is the inverse of encodeText.
func decodeText(text string) (nameSuffix string, nameType namerange.Type, tail []rune, err error) {
	if text == ":" {
		return "", namerange.Strict, nil, nil
	}
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return text, namerange.Strict, nil, nil
	}
	nameSuffix = text[:idx]
	info := text[idx+1:]

	if info == "SEQUENCE" || strings.HasPrefix(info, "SEQUENCE:") {
		fields := strings.Split(info, ":")
		hexFields := fields[1:]
		if len(hexFields) == 0 {
			return "", 0, nil, fmt.Errorf("dbfmt: sequence entry with no tail scalars: %q", text)
		}
		tail = make([]rune, len(hexFields))
		for i, hx := range hexFields {
			v, perr := strconv.ParseInt(hx, 16, 32)
			if perr != nil {
				return "", 0, nil, fmt.Errorf("dbfmt: bad sequence scalar %q: %w", hx, perr)
			}
			tail[i] = rune(v)
		}
		return nameSuffix, namerange.Sequence, tail, nil
	}

	nt, ok := namerange.ParseType(info)
	if !ok {
		return "", 0, nil, fmt.Errorf("dbfmt: unknown nameType spelling %q", info)
	}
	return nameSuffix, nt, nil, nil
}
