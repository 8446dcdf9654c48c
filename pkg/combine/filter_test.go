package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"exact top-level match", "vendor", DefaultExcludedDirs, true},
		{"nested under excluded", "vendor/laravel", DefaultExcludedDirs, true},
		{"multi-segment rule", "storage/logs", DefaultExcludedDirs, true},
		{"multi-segment rule prefix only", "storage", DefaultExcludedDirs, false},
		{"sibling of multi-segment rule", "storage/app", DefaultExcludedDirs, false},
		{"git directory", ".git", DefaultExcludedDirs, true},
		{"plain directory", "app/Http", DefaultExcludedDirs, false},
		// Substring policy: partial segment names are excluded too.
		{"partial segment match", "lib/my-vendor-lib", DefaultExcludedDirs, true},
		{"match inside deeper segment", "packages/node_modules_cache", DefaultExcludedDirs, true},
		{"empty rule ignored", "app", []string{""}, false},
		{"no rules", "vendor", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectoryExcluded(tt.path, tt.excluded))
		})
	}
}

func TestFileExcluded(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"excluded filename", "README.md", true},
		{"filename match is case-sensitive", "readme.md", false},
		{"excluded dotfile filename", ".gitignore", true},
		{"env example", ".env.example", true},
		{"excluded extension", "app.log", true},
		{"extension is case-insensitive", "Photo.JPG", true},
		{"only last extension counts", "backup.tar.gz", true},
		{"last extension not excluded", "image.png.php", false},
		{"source file", "Foo.php", false},
		{"no extension", "Makefile", false},
		{"trailing dot", "notes.", false},
		{"dotfile extension not excluded", ".env", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileExcluded(tt.filename, DefaultExcludedExtensions, DefaultExcludedFilenames))
		})
	}
}

func TestFileExcludedNeverExcludesExtensionlessByExtension(t *testing.T) {
	// Even an empty extension rule must not catch files without an extension.
	assert.False(t, FileExcluded("Dockerfile", []string{"", "dockerfile"}, nil))
	assert.True(t, FileExcluded("Dockerfile", nil, []string{"Dockerfile"}))
}

func TestFileExcludedUnnormalizedExtensions(t *testing.T) {
	assert.True(t, FileExcluded("a.PDF", []string{".Pdf"}, nil))
	assert.True(t, FileExcluded("a.pdf", []string{"PDF"}, nil))
}

func TestNewExclusions(t *testing.T) {
	ex := NewExclusions(
		[]string{"build", ""},
		[]string{".PNG", " Zip ", ""},
		[]string{"LICENSE", ""},
	)

	assert.Equal(t, []string{"build"}, ex.Dirs())
	assert.Equal(t, []string{"png", "zip"}, ex.Extensions())
	assert.Equal(t, []string{"LICENSE"}, ex.Filenames())

	assert.True(t, ex.ExcludesDir("out/build"))
	assert.True(t, ex.ExcludesFile("logo.png"))
	assert.True(t, ex.ExcludesFile("LICENSE"))
	assert.False(t, ex.ExcludesFile("main.go"))
}

func TestExclusionsAreNotShared(t *testing.T) {
	dirs := []string{"vendor"}
	ex := NewExclusions(dirs, nil, nil)
	dirs[0] = "changed"

	assert.Equal(t, []string{"vendor"}, ex.Dirs())

	got := ex.Dirs()
	got[0] = "mutated"
	assert.Equal(t, []string{"vendor"}, ex.Dirs())
}

func TestExclusionsWith(t *testing.T) {
	base := DefaultExclusions()
	extended := base.With([]string{"dist"}, []string{"MD"}, []string{"Makefile"})

	assert.True(t, extended.ExcludesDir("dist"))
	assert.True(t, extended.ExcludesFile("CHANGELOG.md"))
	assert.True(t, extended.ExcludesFile("Makefile"))
	assert.True(t, extended.ExcludesDir("vendor"))

	assert.False(t, base.ExcludesDir("dist"))
	assert.False(t, base.ExcludesFile("CHANGELOG.md"))
	assert.Len(t, base.Dirs(), len(DefaultExcludedDirs))
}
