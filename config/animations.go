package config

// AnimationDef describes one clip of a character sprite sheet.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed int // ticks per frame
}

// Frames returns the number of frames in the clip.
func (d AnimationDef) Frames() int {
	if d.Step <= 0 {
		return 0
	}
	return (d.Last-d.First)/d.Step + 1
}

// Animation keys used by the presentation mapping
const (
	AnimIdle   = "idle"
	AnimWalk   = "walk"
	AnimJump   = "jump"
	AnimDamage = "damage"
	AnimGround = "ground"
)

// AttackAnim returns the clip key of a combo step.
func AttackAnim(comboIndex int) string {
	switch comboIndex {
	case 1:
		return "attack_1"
	case 2:
		return "attack_2"
	}
	return "attack_0"
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions. Characters without
// an entry use the default pose.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		AnimIdle:   {First: 0, Last: 8, Step: 1, Speed: 5},
		AnimWalk:   {First: 0, Last: 10, Step: 1, Speed: 5},
		AnimJump:   {First: 0, Last: 8, Step: 1, Speed: 5},
		"attack_0": {First: 0, Last: 3, Step: 1, Speed: 5},
		"attack_1": {First: 0, Last: 2, Step: 1, Speed: 5},
		"attack_2": {First: 0, Last: 4, Step: 1, Speed: 5},
	},
}
