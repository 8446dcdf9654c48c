package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTree(t *testing.T) {
	got := GenerateTree("shop", []string{
		"readme.md",
		"app/Models/User.php",
		"app/Foo.php",
		"routes/web.php",
	})

	want := "shop/\n" +
		"├── app/\n" +
		"│   ├── Models/\n" +
		"│   │   └── User.php\n" +
		"│   └── Foo.php\n" +
		"├── routes/\n" +
		"│   └── web.php\n" +
		"└── readme.md\n"

	assert.Equal(t, want, got)
}

func TestGenerateTreeEmpty(t *testing.T) {
	assert.Equal(t, "shop/\n", GenerateTree("shop", nil))
}
