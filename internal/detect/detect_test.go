package detect

import "testing"

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"empty", "", Empty},
		{"whitespace only", " \n\t ", Empty},
		{"json object", `{"a":1}`, JSON},
		{"json array", `[1,2]`, JSON},
		{"json string", `"hi"`, JSON},
		{"json number", `42`, JSON},
		{"json negative number", `-3.5`, JSON},
		{"json true", `true`, JSON},
		{"json null", `null`, JSON},
		{"leading whitespace json", "\n  {\"a\":1}", JSON},
		{"yaml mapping", "name: x\nage: 3\n", YAML},
		{"yaml sequence", "- item one\n- item two\n", YAML},
		{"yaml true-prefixed key", "truthy: 1\n", YAML},
		{"yaml n-prefixed key", "name: x\n", YAML},
		{"yaml plain scalar", "hello world", YAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff([]byte(tt.input)); got != tt.want {
				t.Errorf("Sniff(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
