package plan

import "strings"

//go:generate go tool stringer -type=Primitive -trimprefix=Primitive -output=primitive_string.go

// Primitive is the scalar element type of a field.
type Primitive int

const (
	PrimitiveString Primitive = iota
	PrimitiveNumber
	PrimitiveDateTime
	PrimitiveBoolean
)

type prebuiltType struct {
	primitive Primitive
	repeated  bool
}

// prebuilts maps lower-cased prebuilt recognizer names to their native type.
// Date-time recognizers are repeated because a range resolves to a start and
// an end value.
var prebuilts = map[string]prebuiltType{
	"number":       {PrimitiveNumber, false},
	"ordinal":      {PrimitiveNumber, false},
	"ordinalv2":    {PrimitiveNumber, false},
	"percentage":   {PrimitiveNumber, false},
	"age":          {PrimitiveNumber, false},
	"dimension":    {PrimitiveNumber, false},
	"money":        {PrimitiveNumber, false},
	"temperature":  {PrimitiveNumber, false},
	"datetimev2":   {PrimitiveDateTime, true},
	"datetime":     {PrimitiveDateTime, true},
	"boolean":      {PrimitiveBoolean, false},
	"email":        {PrimitiveString, false},
	"url":          {PrimitiveString, false},
	"phonenumber":  {PrimitiveString, false},
	"ip":           {PrimitiveString, false},
	"personname":   {PrimitiveString, false},
	"geographyv2":  {PrimitiveString, false},
	"geography":    {PrimitiveString, false},
	"keyphrase":    {PrimitiveString, true},
	"encyclopedia": {PrimitiveString, true},
}

// prebuiltNames lists the recognizers with their documented spelling.
var prebuiltNames = []string{
	"age", "boolean", "datetime", "datetimeV2", "dimension", "email",
	"encyclopedia", "geography", "geographyV2", "ip", "keyPhrase", "money",
	"number", "ordinal", "ordinalV2", "percentage", "personName",
	"phonenumber", "temperature", "url",
}

// PrebuiltNames returns the names of all recognized prebuilts.
func PrebuiltNames() []string {
	return append([]string(nil), prebuiltNames...)
}

// LookupPrebuilt returns the native type of a prebuilt recognizer.
// The lookup ignores case.
func LookupPrebuilt(subkind string) (Type, bool) {
	pt, ok := prebuilts[strings.ToLower(subkind)]
	if !ok {
		return Type{}, false
	}

	return Type{Primitive: pt.primitive, Repeated: pt.repeated}, true
}
