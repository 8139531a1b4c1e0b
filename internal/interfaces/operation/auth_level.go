// Package operation
package operation

// AuthLevel is a totally ordered authorization level. Higher values hold
// every right of the levels below them.
type AuthLevel int

const (
	LevelGuest AuthLevel = iota
	LevelUser
	LevelAdmin
)

var authLevelNames = map[AuthLevel]string{
	LevelGuest: "GUEST",
	LevelUser:  "USER",
	LevelAdmin: "ADMIN",
}

func (level AuthLevel) String() string {
	if name, ok := authLevelNames[level]; ok {
		return name
	}
	return "UNKNOWN"
}

func (level AuthLevel) Valid() bool {
	_, ok := authLevelNames[level]
	return ok
}

// AtLeast reports whether the level grants at minimum the given level.
func (level AuthLevel) AtLeast(min AuthLevel) bool {
	return level >= min
}

func (level AuthLevel) Index() int { return int(level) }
