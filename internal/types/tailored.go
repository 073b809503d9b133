package types

// BulletChoice identifies which phrasing of a bullet the model recommends.
type BulletChoice string

// BulletChoice values.
const (
	ChoiceOriginal BulletChoice = "original"
	ChoiceTailored BulletChoice = "tailored"
)

// Section represents one labeled group of resume bullets carrying both the
// original and the tailored phrasings. TailoredBullets may be longer than
// OriginalBullets when the model splits a bullet; callers must tolerate the
// mismatch. AIRecommendations aligns with bullets by index and may be absent.
type Section struct {
	Title             string         `json:"title"`
	OriginalBullets   []string       `json:"originalBullets"`
	TailoredBullets   []string       `json:"tailoredBullets"`
	AIRecommendations []BulletChoice `json:"aiRecommendations,omitempty"`
}

// TailoredData represents the full output of one tailoring run. A new run
// replaces the previous result wholesale; results are never merged.
type TailoredData struct {
	Sections   []Section `json:"sections"`
	Summary    string    `json:"summary"`
	KeyMatches []string  `json:"keyMatches"`
}

// EditBullet replaces the tailored bullet at the given section and bullet
// index in place. Returns false when either index is out of range; no other
// bullet is touched.
func (t *TailoredData) EditBullet(sectionIdx, bulletIdx int, text string) bool {
	if sectionIdx < 0 || sectionIdx >= len(t.Sections) {
		return false
	}
	bullets := t.Sections[sectionIdx].TailoredBullets
	if bulletIdx < 0 || bulletIdx >= len(bullets) {
		return false
	}
	bullets[bulletIdx] = text
	return true
}
