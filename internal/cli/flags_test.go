package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DeckName", flags.DeckName, "Japanese Vocabulary"},
		{"LongVowelStyle", flags.LongVowelStyle, "doubled"},
		{"ParticleWa", flags.ParticleWa, "phonetic"},
		{"NSyllabicStyle", flags.NSyllabicStyle, "m-before-labial"},
		{"ApostropheN", flags.ApostropheN, true},
		{"AudioProvider", flags.AudioProvider, "languagepod"},
		{"AudioFormat", flags.AudioFormat, "mp3"},
		{"Concurrency", flags.Concurrency, 4},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAIVoice", flags.OpenAIVoice, "alloy"},
		{"OpenAISpeed", flags.OpenAISpeed, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"SkipAudio", flags.SkipAudio},
		{"AnkiCSV", flags.AnkiCSV},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"DictPath", flags.DictPath},
		{"OutputDir", flags.OutputDir},
		{"BatchFile", flags.BatchFile},
		{"POSHint", flags.POSHint},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "DictPath", "OutputDir", "BatchFile", "DeckName",
		"AnkiCSV", "SkipAudio", "POSHint",
		"LongVowelStyle", "ParticleWa", "NSyllabicStyle", "ApostropheN",
		"AudioProvider", "AudioFormat", "Concurrency",
		"OpenAIModel", "OpenAIVoice", "OpenAISpeed",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
