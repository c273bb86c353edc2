package wordsource

import "math/rand"

// builtinWords is the local fallback dictionary, used when every provider
// attempt fails. Lowercase, three to ten letters, phonetically distinct.
var builtinWords = []string{
	"ace", "amber", "anchor", "apple", "arrow",
	"badge", "banjo", "beacon", "breeze", "bridge",
	"cabin", "candle", "canyon", "cedar", "cobalt",
	"comet", "coral", "cricket", "crystal", "dolphin",
	"drift", "eagle", "ember", "falcon", "fern",
	"flint", "forest", "fox", "garnet", "glacier",
	"grove", "harbor", "hazel", "horizon", "ivory",
	"jade", "jigsaw", "juniper", "kite", "lagoon",
	"lantern", "lark", "lumber", "maple", "meadow",
	"mesa", "nectar", "nimbus", "oak", "onyx",
	"orbit", "osprey", "pebble", "pine", "prairie",
	"quartz", "quill", "raven", "ridge", "saffron",
	"sable", "sparrow", "summit", "thicket", "timber",
	"tundra", "velvet", "walnut", "willow", "zephyr",
}

// pickWord returns a uniformly random word of length at most maxLength from
// words, or false when none qualifies.
func pickWord(words []string, maxLength int) (string, bool) {
	var candidates []string
	for _, w := range words {
		if len(w) <= maxLength {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rand.Intn(len(candidates))], true
}
