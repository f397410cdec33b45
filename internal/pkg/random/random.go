// Package random generates the cosmetic values the gadget API decorates
// its responses with: two-word codenames, mission success probabilities
// and self-destruct confirmation codes. None of them are security
// sensitive, so a plain seedable PRNG is used; tests construct a seeded
// Generator to get deterministic output.
package random

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

var firstNames = []string{
	"Phantom", "Midnight", "Silent", "Crimson", "Shadow",
	"Golden", "Arctic", "Velvet", "Iron", "Obsidian",
	"Emerald", "Scarlet", "Ghost", "Solar", "Lunar",
}

var lastNames = []string{
	"Falcon", "Viper", "Specter", "Raven", "Cobra",
	"Panther", "Kraken", "Mongoose", "Jackal", "Scorpion",
	"Sparrow", "Mantis", "Wolf", "Serpent", "Osprey",
}

type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded from the global source.
func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a Generator with a fixed seed, for
// deterministic tests.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Codename composes a two-word name from the first/last name lists.
// Picks are independent and with replacement, so repeats across gadgets
// are possible.
func (g *Generator) Codename() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	first := firstNames[g.rnd.IntN(len(firstNames))]
	last := lastNames[g.rnd.IntN(len(lastNames))]
	return fmt.Sprintf("%s %s", first, last)
}

// SuccessProbability returns a uniform integer in [50, 100].
func (g *Generator) SuccessProbability() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 50 + g.rnd.IntN(51)
}

// ConfirmationCode returns a uniform six-digit integer in
// [100000, 999999].
func (g *Generator) ConfirmationCode() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 100000 + g.rnd.IntN(900000)
}
