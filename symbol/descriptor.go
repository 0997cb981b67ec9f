package symbol

import "strings"

// ParamTypes splits a method descriptor's parameter list into its
// individual type tokens (primitives stay one letter, object types keep
// their "Lname;" form, arrays keep their leading brackets). The return
// type is reported separately.
func ParamTypes(descriptor string) (params []string, ret string) {
	if len(descriptor) == 0 || descriptor[0] != '(' {
		return nil, descriptor
	}
	i := 1
	for i < len(descriptor) && descriptor[i] != ')' {
		start := i
		for descriptor[i] == '[' {
			i++
		}
		switch descriptor[i] {
		case 'L':
			for descriptor[i] != ';' {
				i++
			}
			i++
		default:
			i++
		}
		params = append(params, descriptor[start:i])
	}
	if i < len(descriptor) {
		ret = descriptor[i+1:]
	}
	return params, ret
}

// IsPrimitive reports whether a single type token is a JVM primitive.
func IsPrimitive(token string) bool {
	if len(token) != 1 {
		return false
	}
	switch token[0] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'V':
		return true
	default:
		return false
	}
}

// IsArray reports whether a type token is an array type.
func IsArray(token string) bool { return strings.HasPrefix(token, "[") }

// IsObject reports whether a type token is an object (class/interface)
// reference, as opposed to primitive or array.
func IsObject(token string) bool {
	return !IsPrimitive(token) && !IsArray(token)
}

// ReferencedClasses returns every binary class name appearing anywhere in
// a descriptor (parameters, return type, and array element types),
// stripping the leading brackets and the "L"/";" wrapper.
func ReferencedClasses(descriptor string) []string {
	var names []string
	for i := 0; i < len(descriptor); i++ {
		for i < len(descriptor) && descriptor[i] == '[' {
			i++
		}
		if i >= len(descriptor) {
			break
		}
		if descriptor[i] == 'L' {
			start := i + 1
			for i < len(descriptor) && descriptor[i] != ';' {
				i++
			}
			names = append(names, descriptor[start:i])
		}
	}
	return names
}

// RemapDescriptor rewrites every class name referenced in a descriptor
// using resolve; names with no mapping become the wildcard "*" (spec
// §4.5, unique descriptor keys).
func RemapDescriptor(descriptor string, resolve func(binaryName string) (string, bool)) string {
	var b strings.Builder
	for i := 0; i < len(descriptor); i++ {
		c := descriptor[i]
		if c == 'L' {
			start := i + 1
			j := start
			for j < len(descriptor) && descriptor[j] != ';' {
				j++
			}
			name := descriptor[start:j]
			if mapped, ok := resolve(name); ok {
				b.WriteByte('L')
				b.WriteString(mapped)
				b.WriteByte(';')
			} else {
				b.WriteString("L*;")
			}
			i = j
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
