package pathkit

import (
	"testing"
)

type testRewriteCase struct {
	path string
	want string
}

func TestRewriteFunc(t *testing.T) {

	type testCase struct {
		path    string
		rewrite string
		cases   []testRewriteCase
	}

	tests := []testCase{
		{
			path:    "/a",
			rewrite: "/b",
			cases: []testRewriteCase{
				{path: "/a", want: "/b"},
				{path: "/a/", want: "/a/"},
				{path: "/c", want: "/c"},
			},
		},
		{
			path:    "/a",
			rewrite: "",
			cases: []testRewriteCase{
				{path: "/a", want: "/a"},
			},
		},
		{
			path:    "/from/(one)/to/(two)",
			rewrite: "/from/(two)/to/(one)",
			cases: []testRewriteCase{
				{path: "/from/123/to/456", want: "/from/456/to/123"},
				{path: "/from/abc/to/def", want: "/from/def/to/abc"},
				{path: "/from/abc/to", want: "/from/abc/to"},
				{path: "/from/a/b/to/c", want: "/from/a/b/to/c"},
			},
		},
		{
			path:    "/from/(one)/to/(two)",
			rewrite: "/(one)/(two)/(three)/(two)/(one)",
			cases: []testRewriteCase{
				{path: "/from/123/to/456", want: "/123/456/(three)/456/123"},
				{path: "/from/abc/to/def", want: "/abc/def/(three)/def/abc"},
			},
		},
		{
			path:    "/from/(name)/upload",
			rewrite: "/to/(name)/upload",
			cases: []testRewriteCase{
				{path: "/from/untitled-1%2F/upload", want: "/to/untitled-1%2F/upload"},
			},
		},
		{
			path:    "/date/(year)/(month)/abc",
			rewrite: "/date/(month)/(year)/def",
			cases: []testRewriteCase{
				{path: "/date/1/2/abc", want: "/date/2/1/def"},
			},
		},
		{
			path:    "/images/(category)-(name).jpg",
			rewrite: "/img/(category)/(name)",
			cases: []testRewriteCase{
				{path: "/images/cats-Tom.jpg", want: "/img/cats/Tom"},
				{path: "/images/cats.png", want: "/images/cats.png"},
			},
		},
	}

	for _, test := range tests {
		t.Logf("Test - path: %s, rewrite: %s", test.path, test.rewrite)

		fn, err := NewRewriteFunc(test.path, test.rewrite)
		if err != nil {
			t.Fatalf("Failed create rewrite func: %v", err)
		}

		for _, fixture := range test.cases {
			want := fixture.want
			got := fn(fixture.path)
			if got != fixture.want {
				t.Errorf("Unexpected rewrite result, want %q, but got %q", want, got)
			}
		}
	}
}

func TestRewriteFuncInvalidPath(t *testing.T) {
	for _, path := range []string{"/a/()", "/(id)/(id)"} {
		if _, err := NewRewriteFunc(path, "/b"); err == nil {
			t.Errorf("Expected error for path %q", path)
		}
	}
}
