package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Basic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Food Delivery", "food-delivery"},
		{"Pet Sitting", "pet-sitting"},
		{"Simple", "simple"},
		{"ALL UPPER CASE", "all-upper-case"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_SpecialCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Rideshare & Delivery", "rideshare-delivery"},
		{"Tutoring: $40/hr", "tutoring-40-hr"},
		{"Hello!!! World???", "hello-world"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestGenerate_WhitespaceHandling(t *testing.T) {
	assert.Equal(t, "dog-walking", Generate("   dog walking   "))
	assert.Equal(t, "dog-walking", Generate("dog   walking"))
	assert.Equal(t, "dog-walking", Generate("dog\t\twalking"))
}

func TestGenerate_EdgeCases(t *testing.T) {
	assert.Equal(t, "", Generate(""))
	assert.Equal(t, "", Generate("   "))
	assert.Equal(t, "", Generate("!!!"))
	assert.Equal(t, "a", Generate("a"))
	assert.Equal(t, "123", Generate("123"))
}

func TestGenerate_NoLeadingTrailingHyphens(t *testing.T) {
	assert.Equal(t, "hello", Generate("-hello-"))
	assert.Equal(t, "hello", Generate("!hello!"))
	assert.Equal(t, "a-b", Generate("a - - b"))
}
