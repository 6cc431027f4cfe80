package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestForClasses(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		classes []string
		hidden  bool
		want    any
	}{
		{"no modifier", []string{"c-toast"}, false, Lavender},
		{"level modifier", []string{"c-toast", "c-toast--error"}, false, Red},
		{"color alias", []string{"c-toast", "c-toast--green"}, false, Green},
		{"first known modifier wins", []string{"c-toast", "c-toast--bogus", "c-toast--warning", "c-toast--red"}, false, Yellow},
		{"hidden ignores modifiers", []string{"c-toast", "c-toast--error"}, true, Surface1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := s.ForClasses("c-toast", tt.classes, tt.hidden)
			assert.Equal(t, tt.want, style.GetBorderTopForeground())
		})
	}
}
