package content

import "testing"

func TestCleanHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"scripts and styles stripped",
			`<html><script>var x = "<b>hidden</b>";</script><style>p { color: red }</style><p>Visible text</p></html>`,
			"Visible text",
		},
		{
			"page chrome stripped",
			`<nav><a href="/">Home</a></nav><main>Flavour cores</main><footer>© QUIT IT</footer>`,
			"Flavour cores",
		},
		{
			"tags become word separators",
			`<p>Cool</p><p>Mint</p>`,
			"Cool Mint",
		},
		{
			"entities decoded after tag removal",
			`&lt;b&gt;not a tag&lt;/b&gt; &amp; fine`,
			"<b>not a tag</b> & fine",
		},
		{
			"escaped text round-trips through the strip",
			`AT&amp;T coverage &amp; pricing`,
			"AT&T coverage & pricing",
		},
		{
			"nbsp and whitespace collapsed",
			"Ships&nbsp;in   3–7\n\n business\t days",
			"Ships in 3–7 business days",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tc := range cases {
		if got := CleanHTML(tc.in); got != tc.want {
			t.Fatalf("%s: CleanHTML = %q, want %q", tc.name, got, tc.want)
		}
	}
}
