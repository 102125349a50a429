package pet

// stageSprites is the fallback ASCII art used when no sprite asset is
// installed for the companion's kind and stage.
var stageSprites = map[int]string{
	1: "  .-.'",
	2: "  (o o)",
	3: "   _._\n  /   \\\n ( o o )",
	4: "    _._\n   /   \\\n  ( o o )\n   \\ ~ /",
	5: "    _._\n   /   \\\n  ( o o )\n   \\ ~ /\n    | |\n   /   \\",
}

// Sprite returns the ASCII art for the companion's current stage.
func (p *Pet) Sprite() string {
	if s, ok := stageSprites[p.Level]; ok {
		return s
	}
	return stageSprites[5]
}
