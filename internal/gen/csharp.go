package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"luisgen/internal/naming"
	"luisgen/internal/plan"
)

// DefaultNamespace is the C# namespace used when none is given.
const DefaultNamespace = "Luis"

// CSharp renders a plan as a C# class file for Newtonsoft.Json results.
type CSharp struct {
	// Namespace of the generated types. Defaults to DefaultNamespace.
	Namespace string
	// Description is recorded in the header comment.
	Description string
}

// Language returns "cs".
func (c *CSharp) Language() string { return "cs" }

// Extension returns ".cs".
func (c *CSharp) Extension() string { return ".cs" }

// csPrimitives maps primitives to C# types.
var csPrimitives = map[plan.Primitive]string{
	plan.PrimitiveString:   "string",
	plan.PrimitiveNumber:   "double",
	plan.PrimitiveDateTime: "DateTime",
	plan.PrimitiveBoolean:  "bool",
}

// csReaders maps primitives to the suffix of the generated Read helpers.
var csReaders = map[plan.Primitive]string{
	plan.PrimitiveString:   "String",
	plan.PrimitiveNumber:   "Number",
	plan.PrimitiveDateTime: "DateTime",
	plan.PrimitiveBoolean:  "Bool",
}

type csharpData struct {
	Description string
	Namespace   string
	IntentType  string
	IntentRef   string
	Intents     []intentData
	Nested      []csDecl
	Root        csDecl
}

type csDecl struct {
	Name   string
	Fields []csField
}

type csField struct {
	Ident   string
	Literal string
	Type    string
	Read    string
}

// Render returns the C# artifact for p.
func (c *CSharp) Render(p *plan.Plan) ([]byte, error) {
	if err := checkPlan(p); err != nil {
		return nil, err
	}

	ns := DefaultNamespace
	if c.Namespace != "" {
		ns = naming.Qualified(c.Namespace, naming.PlaceholderEntity)
	}

	reader := "global::" + ns + "." + p.Root.Name

	data := &csharpData{
		Description: oneLine(c.Description),
		Namespace:   ns,
		IntentType:  p.IntentType,
		IntentRef:   "global::" + ns + "." + p.IntentType,
		Intents:     buildIntents(p),
		Root:        c.decl(p.Root, ns, reader),
	}

	for _, d := range p.Nested {
		data.Nested = append(data.Nested, c.decl(d, ns, reader))
	}

	var buf bytes.Buffer
	if err := csharpTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

func (c *CSharp) decl(d *plan.Declaration, ns, reader string) csDecl {
	out := csDecl{Name: d.Name}

	for _, f := range d.Fields {
		out.Fields = append(out.Fields, csField{
			Ident:   f.Ident,
			Literal: quoteLiteral(f.Source),
			Type:    csType(f.Type),
			Read:    csRead(f, ns, reader),
		})
	}

	return out
}

// csType returns the nullable C# type of a field.
func csType(t plan.Type) string {
	if t.Composite {
		return t.Decl.Name + "?"
	}

	name := csPrimitives[t.Primitive]
	if t.Repeated {
		name += "[]"
	}

	return name + "?"
}

// csRead returns the expression that reads a field from the "entities"
// token of a recognition result.
func csRead(f plan.Field, ns, reader string) string {
	src := quoteLiteral(f.Source)

	if f.IsNested() {
		return fmt.Sprintf("global::%s.%s.FromEntities(%s.FirstValue(entities, %s))",
			ns, f.Type.Decl.Name, reader, src)
	}

	method := "Read" + csReaders[f.Type.Primitive]
	if f.Type.Repeated {
		method += "s"
	}

	return fmt.Sprintf("%s.%s(entities, %s)", reader, method, src)
}

var csharpTemplate = template.Must(template.New("csharp").Parse(`{{define "members"}}
{{- range .Fields}}
        [JsonProperty({{.Literal}})]
        public {{.Type}} {{.Ident}} { get; set; }
{{end}}
        internal static {{.Name}}? FromEntities(JToken? entities)
        {
            if (entities is not JObject)
            {
                return null;
            }

            return new {{.Name}}
            {
{{- range .Fields}}
                {{.Ident}} = {{.Read}},
{{- end}}
            };
        }
{{- end}}// <auto-generated>
// Code generated by {{.Description}}
// Changes to this file may cause incorrect behavior and will be lost if the code is regenerated.
// </auto-generated>
#nullable enable
using System;
using System.Collections.Generic;
using System.Globalization;
using System.Linq;
using Newtonsoft.Json;
using Newtonsoft.Json.Linq;

namespace {{.Namespace}}
{
    public enum {{.IntentType}}
    {
{{- range .Intents}}
        {{.Ident}},
{{- end}}
    }
{{- range .Nested}}

    public partial class {{.Name}}
    {
{{- template "members" .}}
    }
{{- end}}

    public partial class {{.Root.Name}}
    {
{{- template "members" .Root}}

        private static readonly Dictionary<string, {{.IntentRef}}> IntentNames = new Dictionary<string, {{.IntentRef}}>
        {
{{- range .Intents}}{{if .First}}
            [{{.Literal}}] = {{$.IntentRef}}.{{.Ident}},
{{- end}}{{end}}
        };

        /// <summary>Returns the highest scoring known intent of a recognition result and its score.</summary>
        public static ({{.IntentRef}}? Intent, double Score) TopIntent(JObject result)
        {
            {{.IntentRef}}? top = null;
            var max = 0.0;

            foreach (var (name, score) in IntentScores(result))
            {
                if (IntentNames.TryGetValue(name, out var intent) && (top == null || score > max))
                {
                    top = intent;
                    max = score;
                }
            }

            return (top, max);
        }

        /// <summary>Materializes the typed entities of a recognition result.</summary>
        public static {{.Root.Name}} FromRecognitionResult(JObject result)
        {
            return FromEntities(result["entities"]) ?? new {{.Root.Name}}();
        }

        private static IEnumerable<(string Name, double Score)> IntentScores(JObject result)
        {
            switch (result["intents"])
            {
                case JObject byName:
                    foreach (var property in byName.Properties())
                    {
                        yield return (property.Name, ReadScore(property.Value));
                    }

                    break;
                case JArray list:
                    foreach (var item in list.OfType<JObject>())
                    {
                        if (item["intent"] is JValue { Type: JTokenType.String } name)
                        {
                            yield return ((string)name!, ReadScore(item));
                        }
                    }

                    break;
            }

            if (result["topScoringIntent"] is JObject top && top["intent"] is JValue { Type: JTokenType.String } topName)
            {
                yield return ((string)topName!, ReadScore(top));
            }
        }

        private static double ReadScore(JToken token) => AsNumber((token as JObject)?["score"]) ?? 0.0;

        internal static JToken? FirstValue(JToken? entities, string name) => Values(entities, name).FirstOrDefault();

        internal static string? ReadString(JToken? entities, string name) =>
            Values(entities, name).Select(AsString).FirstOrDefault(value => value != null);

        internal static string[]? ReadStrings(JToken? entities, string name) =>
            Many(Values(entities, name).Select(AsString));

        internal static double? ReadNumber(JToken? entities, string name) =>
            Values(entities, name).Select(AsNumber).FirstOrDefault(value => value != null);

        internal static double[]? ReadNumbers(JToken? entities, string name) =>
            Many(Values(entities, name).Select(AsNumber));

        internal static DateTime? ReadDateTime(JToken? entities, string name) =>
            Values(entities, name).SelectMany(AsDateTimes).Select(value => (DateTime?)value).FirstOrDefault();

        internal static DateTime[]? ReadDateTimes(JToken? entities, string name) =>
            Many(Values(entities, name).SelectMany(AsDateTimes).Select(value => (DateTime?)value));

        internal static bool? ReadBool(JToken? entities, string name) =>
            Values(entities, name).Select(AsBool).FirstOrDefault(value => value != null);

        internal static bool[]? ReadBools(JToken? entities, string name) =>
            Many(Values(entities, name).Select(AsBool));

        private static IEnumerable<JToken> Values(JToken? entities, string name)
        {
            var token = (entities as JObject)?[name];
            if (token is not JArray array)
            {
                return token == null || token.Type == JTokenType.Null ? Enumerable.Empty<JToken>() : new[] { token };
            }

            return array
                .SelectMany(item => item is JArray inner ? inner.ToArray() : new[] { item })
                .Where(item => item.Type != JTokenType.Null);
        }

        private static string[]? Many(IEnumerable<string?> values)
        {
            var array = values.Where(value => value != null).Select(value => value!).ToArray();
            return array.Length == 0 ? null : array;
        }

        private static T[]? Many<T>(IEnumerable<T?> values) where T : struct
        {
            var array = values.Where(value => value.HasValue).Select(value => value!.Value).ToArray();
            return array.Length == 0 ? null : array;
        }

        private static string? AsString(JToken token) => token switch
        {
            JValue value => Convert.ToString(value.Value, CultureInfo.InvariantCulture),
            JObject obj when obj["value"] is JValue inner => Convert.ToString(inner.Value, CultureInfo.InvariantCulture),
            _ => token.ToString(Formatting.None),
        };

        private static double? AsNumber(JToken? token) => token switch
        {
            JValue { Type: JTokenType.Integer or JTokenType.Float } value => value.Value<double>(),
            JValue { Type: JTokenType.String } value when double.TryParse((string?)value, NumberStyles.Float, CultureInfo.InvariantCulture, out var parsed) => parsed,
            JObject obj when obj["number"] != null => AsNumber(obj["number"]),
            JObject obj when obj["value"] != null => AsNumber(obj["value"]),
            JObject obj when obj["offset"] != null => AsNumber(obj["offset"]),
            _ => default(double?),
        };

        private static bool? AsBool(JToken token) => token switch
        {
            JValue { Type: JTokenType.Boolean } value => value.Value<bool>(),
            JValue { Type: JTokenType.String } value when bool.TryParse((string?)value, out var parsed) => parsed,
            _ => default(bool?),
        };

        private static IEnumerable<DateTime> AsDateTimes(JToken token)
        {
            if (token is JValue single)
            {
                if (TryDate(single, out var date))
                {
                    yield return date;
                }

                yield break;
            }

            if (token is not JContainer container)
            {
                yield break;
            }

            foreach (var property in container.Descendants().OfType<JProperty>())
            {
                if ((property.Name is "value" or "start" or "end") && property.Value is JValue value && TryDate(value, out var parsed))
                {
                    yield return parsed;
                }
            }
        }

        private static bool TryDate(JValue value, out DateTime date)
        {
            if (value.Type == JTokenType.Date)
            {
                date = value.Value<DateTime>();
                return true;
            }

            date = default;
            return value.Type == JTokenType.String
                && DateTime.TryParse((string?)value, CultureInfo.InvariantCulture, DateTimeStyles.RoundtripKind, out date);
        }
    }
}
`))
