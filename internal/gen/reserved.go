package gen

import "luisgen/internal/plan"

// csharpTypes are the type names the C# artifact refers to unqualified. A
// declaration or a member with one of these names would shadow it.
var csharpTypes = []string{
	"System", "Newtonsoft", "Convert", "CultureInfo", "DateTime",
	"DateTimeStyles", "Dictionary", "Enumerable", "Formatting", "IEnumerable",
	"JArray", "JContainer", "JObject", "JProperty", "JToken", "JTokenType",
	"JValue", "JsonProperty", "JsonPropertyAttribute", "NumberStyles",
}

// typescriptTypes are the type names the TypeScript artifact relies on.
var typescriptTypes = []string{
	"Date", "any", "bigint", "boolean", "never", "number", "object",
	"symbol", "undefined", "unknown",
}

// csharpMembers are the members the C# emitter adds to declarations.
var csharpMembers = []string{
	"AsBool", "AsDateTimes", "AsNumber", "AsString", "FirstValue",
	"FromEntities", "FromRecognitionResult", "IntentNames", "IntentScores",
	"Many", "ReadBool", "ReadBools", "ReadDateTime", "ReadDateTimes",
	"ReadNumber", "ReadNumbers", "ReadScore", "ReadString", "ReadStrings",
	"TopIntent", "TryDate", "Values",
}

// ResolveOptions returns plan options that keep declarations and fields
// clear of the names every emitter relies on. typeName may be empty.
func ResolveOptions(typeName string) plan.Options {
	types := make([]string, 0, len(csharpTypes)+len(typescriptTypes))
	types = append(types, csharpTypes...)
	types = append(types, typescriptTypes...)

	members := make([]string, 0, len(csharpMembers)+len(csharpTypes))
	members = append(members, csharpMembers...)
	members = append(members, csharpTypes...)

	return plan.Options{
		TypeName:        typeName,
		ReservedTypes:   types,
		ReservedMembers: members,
	}
}
