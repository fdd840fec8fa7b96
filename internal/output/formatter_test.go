package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/terminus/internal/domain"
	"github.com/footprint-tools/terminus/internal/ui/style"
)

func TestFormatterFor(t *testing.T) {
	styler := style.NopStyler{}

	require.IsType(t, JSONFormatter{}, FormatterFor("json", styler))
	require.IsType(t, BashFormatter{}, FormatterFor("bash", styler))
	require.Equal(t, PrettyFormatter{Styler: styler}, FormatterFor("pretty", styler))
	require.IsType(t, PrettyFormatter{}, FormatterFor("unknown", styler))
	require.IsType(t, PrettyFormatter{}, FormatterFor("", nil))
}

// bracketStyler marks styled text so tests can see which styler call
// produced it.
type bracketStyler struct{}

func (bracketStyler) Info(text string) string   { return "[" + text + "]" }
func (bracketStyler) Header(text string) string { return "<" + text + ">" }

func sample() domain.Values {
	return domain.Values{
		"format":   "json",
		"colorize": false,
		"require":  []string{"a.yml", "b.yml"},
	}
}

func TestJSONFormatter(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, JSONFormatter{}.Format(&out, sample()))

	require.JSONEq(t, `{"format":"json","colorize":false,"require":["a.yml","b.yml"]}`, out.String())
}

func TestBashFormatter(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{
			name: "flat map",
			data: sample(),
			want: "colorize\tfalse\nformat\tjson\nrequire\ta.yml,b.yml\n",
		},
		{
			name: "nested map",
			data: map[string]domain.Values{"site list": {"org": "acme"}},
			want: "site list.org\tacme\n",
		},
		{
			name: "list",
			data: []string{"one", "two"},
			want: "one\ntwo\n",
		},
		{
			name: "scalar",
			data: "1.2.3",
			want: "1.2.3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, BashFormatter{}.Format(&out, tt.data))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrettyFormatter(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{
			name: "aligned keys",
			data: sample(),
			want: "colorize  false\nformat    json\nrequire   a.yml,b.yml\n",
		},
		{
			name: "nested sections",
			data: map[string]any{
				"version": "1.0",
				"site list": map[string]any{
					"org": "acme",
				},
			},
			want: "site list\n  org  acme\nversion  1.0\n",
		},
		{
			name: "string map",
			data: map[string]string{"version": "1.2.3"},
			want: "version  1.2.3\n",
		},
		{
			name: "list",
			data: []string{"a", "b"},
			want: "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, PrettyFormatter{}.Format(&out, tt.data))
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrettyFormatter_UsesStyler(t *testing.T) {
	var out bytes.Buffer
	data := map[string]any{
		"version":   "1.0",
		"site list": map[string]any{"org": "acme"},
	}

	require.NoError(t, PrettyFormatter{Styler: bracketStyler{}}.Format(&out, data))

	require.Equal(t, "<site list>\n  [org]  acme\n[version]  1.0\n", out.String())
}

func TestOutputter(t *testing.T) {
	var out bytes.Buffer
	o := New(&out, BashFormatter{})

	require.NoError(t, o.Output(map[string]string{"a": "b"}))
	require.NoError(t, o.Output("done"))

	require.Equal(t, "a\tb\ndone\n", out.String())
}
