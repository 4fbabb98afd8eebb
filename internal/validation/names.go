package validation

import (
	"reflect"
	"strings"
	"unicode"
)

// jsonFieldName reports fields by a display form of their json name so
// messages read "Password must ..." rather than the Go identifier.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
