package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luisgen/internal/diagnostic"
)

func names(entities []Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Name)
	}

	return out
}

func TestLoadFile_Calendar(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "calendar.json"))
	require.NoError(t, err)

	assert.Equal(t, "Calendar Assistant", doc.Name)
	assert.Equal(t, "3.2.0", doc.Version)
	assert.Equal(t, "en-us", doc.Culture)
	assert.Equal(t, []Intent{{"Calendar.Add"}, {"Calendar.Find"}, {"None"}}, doc.Intents)

	// simple, regex, composite, hierarchical, list, prebuilt, pattern-any;
	// the closed list "Room" loses to the hierarchical declared earlier.
	assert.Equal(t, []string{
		"Subject", "Location", "Meeting Code",
		"Meeting", "Room",
		"Category",
		"datetimeV2", "number", "weather",
		"Title",
	}, names(doc.Entities))

	require.Len(t, doc.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateEntity, doc.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "Room", doc.Diagnostics.Warnings[0].Entity)

	subject, ok := doc.lookup("Subject")
	require.True(t, ok)
	assert.Equal(t, KindSimple, subject.Kind)
	assert.Equal(t, []string{"newSubject", "oldSubject"}, subject.Roles)

	code, ok := doc.lookup("Meeting Code")
	require.True(t, ok)
	assert.Equal(t, KindSimple, code.Kind)
	assert.Equal(t, SectionRegex, code.Section)

	title, ok := doc.lookup("Title")
	require.True(t, ok)
	assert.Equal(t, KindSimple, title.Kind)
	assert.Equal(t, SectionPatternAny, title.Section)

	dt, ok := doc.lookup("datetimeV2")
	require.True(t, ok)
	assert.Equal(t, KindPrebuilt, dt.Kind)
	assert.Equal(t, "datetimeV2", dt.Subkind)
	assert.Equal(t, []string{"start", "end"}, dt.Roles)
}

func TestLoadFile_CompositeChildrenByName(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "calendar.json"))
	require.NoError(t, err)

	meeting, ok := doc.lookup("Meeting")
	require.True(t, ok)
	require.True(t, meeting.IsComposite())
	require.Len(t, meeting.Children, 3)

	assert.Equal(t, "Subject", meeting.Children[0].Name)
	assert.Equal(t, KindSimple, meeting.Children[0].Kind)

	assert.Equal(t, KindPrebuilt, meeting.Children[1].Kind)
	assert.Equal(t, "datetimeV2", meeting.Children[1].Subkind)

	// "Room" is first declared as a hierarchical and composites are never
	// resolved by name.
	assert.Equal(t, KindSimple, meeting.Children[2].Kind)
	assert.Equal(t, "Meeting", meeting.Children[2].Parent)
	assert.Equal(t, "Meeting.Room", meeting.Children[2].Path())

	room, ok := doc.lookup("Room")
	require.True(t, ok)
	assert.Equal(t, KindComposite, room.Kind)
	assert.Equal(t, SectionHierarchical, room.Section)
	assert.Equal(t, []string{"Building", "Floor"}, names(room.Children))
}

func TestParse_ScenarioDocument(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"Home Automation","intents":[{"name":"Turn On"},{"name":"Turn On"}],"entities":[{"name":"Device Name"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "Home Automation", doc.Name)
	assert.Len(t, doc.Intents, 2)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, KindSimple, doc.Entities[0].Kind)
	assert.Equal(t, SectionEntities, doc.Entities[0].Section)
}

func TestParse_NestedObjectChildren(t *testing.T) {
	data := `{
		"name": "Scheduler",
		"entities": [
			{"name": "Meeting", "kind": "composite", "children": [
				{"name": "Attendee", "kind": "simple"},
				{"name": "Slot", "children": [
					{"name": "Start", "kind": "prebuilt", "subkind": "datetimeV2"},
					{"name": "Length", "instanceOf": "number"}
				]}
			]}
		],
		"prebuiltEntities": [{"name": "number"}]
	}`

	doc, err := Parse([]byte(data))
	require.NoError(t, err)

	meeting, ok := doc.lookup("Meeting")
	require.True(t, ok)
	require.Len(t, meeting.Children, 2)

	slot := meeting.Children[1]
	assert.Equal(t, KindComposite, slot.Kind)
	assert.Equal(t, "Meeting", slot.Parent)
	require.Len(t, slot.Children, 2)

	assert.Equal(t, KindPrebuilt, slot.Children[0].Kind)
	assert.Equal(t, "datetimeV2", slot.Children[0].Subkind)
	assert.Equal(t, "Meeting.Slot.Start", slot.Children[0].Path())

	assert.Equal(t, KindPrebuilt, slot.Children[1].Kind)
	assert.Equal(t, "number", slot.Children[1].Subkind)
}

func TestParse_UnknownKindIsKept(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"App","entities":[{"name":"Thing","kind":"quantum"}]}`))
	require.NoError(t, err)

	require.Len(t, doc.Entities, 1)
	assert.Equal(t, KindUnknown, doc.Entities[0].Kind)
	assert.Equal(t, "quantum", doc.Entities[0].RawKind)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason diagnostic.SchemaReason
	}{
		{"missing name", `{"intents":[]}`, diagnostic.MissingAppName},
		{"blank name", `{"name":"   "}`, diagnostic.MissingAppName},
		{"null document", `null`, diagnostic.MissingAppName},
		{"not json", `{"name":`, diagnostic.Malformed},
		{"empty input", ``, diagnostic.Malformed},
		{"array document", `[1,2]`, diagnostic.Malformed},
		{"wrong section type", `{"name":"A","intents":{"name":"x"}}`, diagnostic.Malformed},
		{"bad child", `{"name":"A","composites":[{"name":"C","children":[5]}]}`, diagnostic.Malformed},
		{"blank intent", `{"name":"A","intents":[{"name":"ok"},{"name":""}]}`, diagnostic.MissingIntentName},
		{"blank entity", `{"name":"A","closedLists":[{"name":" "}]}`, diagnostic.MissingEntityName},
		{"blank child", `{"name":"A","composites":[{"name":"C","children":[""]}]}`, diagnostic.MissingEntityName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, diagnostic.IsSchemaError(err))
			assert.Equal(t, tt.reason, diagnostic.Reason(err))
		})
	}
}

func TestParse_MissingSectionsAreEmpty(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"Bare"}`))
	require.NoError(t, err)

	assert.Empty(t, doc.Intents)
	assert.Empty(t, doc.Entities)
	assert.False(t, doc.Diagnostics.HasWarnings())
}

func TestParseYAML_MatchesJSON(t *testing.T) {
	jsonDoc := `{
		"name": "Pizza Bot",
		"intents": [{"name": "Order"}, {"name": "Cancel"}],
		"entities": [{"name": "Topping", "roles": ["extra"]}],
		"composites": [{"name": "Pizza", "children": ["Size", "Topping"]}],
		"closedLists": [{"name": "Size"}],
		"prebuiltEntities": [{"name": "number"}]
	}`

	yamlDoc := `
name: Pizza Bot
intents:
  - name: Order
  - name: Cancel
entities:
  - name: Topping
    roles: [extra]
composites:
  - name: Pizza
    children: [Size, Topping]
closedLists:
  - name: Size
prebuiltEntities:
  - name: number
`

	fromJSON, err := Parse([]byte(jsonDoc))
	require.NoError(t, err)

	fromYAML, err := ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoad_Stream(t *testing.T) {
	doc, err := Load(strings.NewReader("name: Streamed\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Streamed", doc.Name)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, diagnostic.IsIOError(err))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("intents: []\n"), 0o644))

	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Equal(t, diagnostic.MissingAppName, diagnostic.Reason(err))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("model.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("MODEL.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("model.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("model"))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"simple", KindSimple},
		{"Machine-Learned", KindSimple},
		{"pattern.any", KindSimple},
		{"regex", KindSimple},
		{"closedList", KindList},
		{"LIST", KindList},
		{"hierarchical", KindComposite},
		{"composite", KindComposite},
		{"prebuilt", KindPrebuilt},
		{"phraselist", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.input))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Simple", KindSimple.String())
	assert.Equal(t, "Prebuilt", KindPrebuilt.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
