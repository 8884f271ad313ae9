package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_Generate(t *testing.T) {
	examplesDir, err := filepath.Abs(filepath.Join("..", "..", "examples"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		export   string
		typeName string
		csHas    []string
		tsHas    []string
	}{
		{
			name:     "home-automation",
			export:   "export.json",
			typeName: "Home_Automation",
			csHas: []string{
				"public partial class Setting",
				"public string? HomeAutomation_Device { get; set; }",
				"public string? target_room { get; set; }",
				"public string[]? HomeAutomation_Operation { get; set; }",
				`["HomeAutomation.TurnOn"] = global::Luis.Home_AutomationIntent.HomeAutomation_TurnOn,`,
			},
			tsHas: []string{
				"export interface Setting {\n    HomeAutomation_Device?: string;\n    number?: number;\n    HomeAutomation_Operation?: string[];\n}\n",
				"    temperature?: number;",
			},
		},
		{
			name:     "calendar",
			export:   "export.json",
			typeName: "Calendar_Assistant",
			csHas: []string{
				"public partial class Meeting",
				"public partial class Room",
				"public DateTime[]? datetimeV2 { get; set; }",
			},
			tsHas: []string{
				`Calendar_Add = "Calendar.Add",`,
				"    newSubject?: string;",
			},
		},
		{
			name:     "travel",
			export:   "export.yaml",
			typeName: "Travel_Agent",
			csHas: []string{
				"public partial class Dates",
				"public partial class Trip",
				"public double? budget { get; set; }",
			},
			tsHas: []string{
				"export interface Dates {\n    Departure?: Date[];\n    Return?: Date[];\n}\n",
				"    Hotel_Name?: string;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			input := filepath.Join(examplesDir, tt.name, tt.export)

			_, err := runApp(t, "", "-cs", "-ts", "-o", out, input)
			require.NoError(t, err)

			cs := readFile(t, filepath.Join(out, tt.typeName+".cs"))
			for _, want := range tt.csHas {
				assert.Contains(t, cs, want)
			}

			ts := readFile(t, filepath.Join(out, tt.typeName+".ts"))
			for _, want := range tt.tsHas {
				assert.Contains(t, ts, want)
			}
		})
	}
}
