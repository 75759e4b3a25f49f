package randomstringgenerator

import (
	"math/rand"
)

const eventUIDDomain = "@assistant"

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateEventUID() string {
	b := make([]rune, 32)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return string(b) + eventUIDDomain
}
