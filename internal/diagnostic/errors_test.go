package diagnostic

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	schemaErr := NewSchemaError(MissingAppName, "name", nil)
	ioErr := NewIOError("write", "/tmp/out/App.cs", fs.ErrPermission)
	kindErr := NewUnsupportedKindError("Thing", "regexV9")

	tests := []struct {
		name        string
		err         error
		schema      bool
		io          bool
		unsupported bool
	}{
		{"schema", schemaErr, true, false, false},
		{"io", ioErr, false, true, false},
		{"unsupported", kindErr, false, false, true},
		{"wrapped schema", fmt.Errorf("loading: %w", schemaErr), true, false, false},
		{"plain", errors.New("boom"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.schema, IsSchemaError(tt.err))
			assert.Equal(t, tt.io, IsIOError(tt.err))
			assert.Equal(t, tt.unsupported, IsUnsupportedKind(tt.err))
		})
	}
}

func TestIOError_Unwrap(t *testing.T) {
	err := NewIOError("read", "export.json", fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "failed to read export.json: file does not exist", err.Error())
}

func TestSchemaError_Message(t *testing.T) {
	err := NewSchemaError(MissingIntentName, "intents[1].name", nil)

	assert.Equal(t, "schema error: MissingIntentName at intents[1].name", err.Error())
	assert.Equal(t, MissingIntentName, Reason(fmt.Errorf("wrap: %w", err)))
	assert.Equal(t, SchemaReason(""), Reason(errors.New("other")))
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasWarnings())

	d.AddWarning(CodeEmptyComposite, "composite has no children", "Meeting", "Meeting")
	d.AddInfo(CodeRenamed, "renamed to Turn_On_1", "Turn On", "")

	var other Diagnostics
	other.AddWarning(CodeUnknownPrebuilt, "degraded to string", "weather", "")
	d.Merge(other)

	assert.True(t, d.HasWarnings())
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.All(), 3)
	assert.Equal(t, "[Meeting]: [empty-composite] composite has no children", d.Warnings[0].String())
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())
	assert.Equal(t, "info", d.Infos[0].Severity.String())
}
