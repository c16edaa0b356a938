// Package theme resolves (mode, role) pairs to visual styles. Both
// color modes are backed by one table whose key sets are verified to
// match at construction, so resolution is total: every role has a
// defined style under light and dark.
package theme

import "fmt"

// Mode is the resolved ambient color scheme
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the config-facing name of the mode
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Role identifies what kind of visual element is being styled,
// independent of its current interaction state. The set is closed;
// adding a role without styling it in both modes fails NewResolver.
type Role int

const (
	// UI chrome roles
	NavLink Role = iota
	NavLinkActive
	NavLinkPanicked
	SectionDivider
	NoticeBanner

	// Code token roles, fed by the chroma token mapping in tokens.go
	CodeText
	CodeKeyword
	CodeString
	CodeComment
	CodeNumber
	CodeFunction
	CodeType
	CodeOperator
	CodePunctuation
	CodeBuiltin
	CodeConstant
	CodeVariable
	CodeAttribute
	CodeTag
	CodeError

	roleCount
)

var roleNames = [roleCount]string{
	NavLink:         "NavLink",
	NavLinkActive:   "NavLinkActive",
	NavLinkPanicked: "NavLinkPanicked",
	SectionDivider:  "SectionDivider",
	NoticeBanner:    "NoticeBanner",
	CodeText:        "CodeText",
	CodeKeyword:     "CodeKeyword",
	CodeString:      "CodeString",
	CodeComment:     "CodeComment",
	CodeNumber:      "CodeNumber",
	CodeFunction:    "CodeFunction",
	CodeType:        "CodeType",
	CodeOperator:    "CodeOperator",
	CodePunctuation: "CodePunctuation",
	CodeBuiltin:     "CodeBuiltin",
	CodeConstant:    "CodeConstant",
	CodeVariable:    "CodeVariable",
	CodeAttribute:   "CodeAttribute",
	CodeTag:         "CodeTag",
	CodeError:       "CodeError",
}

// String returns the role name
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// AllRoles returns every role in declaration order
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// VisualStyle is the resolved appearance of one element. Colors are
// hex strings; empty means the terminal default applies.
type VisualStyle struct {
	Foreground string
	Background string
	Border     string
}

// Per-mode style tables. Light/dark pairs are kept adjacent in
// reading order: edit both when touching a role.
var lightStyles = map[Role]VisualStyle{
	NavLink:         {Foreground: "#495057"},
	NavLinkActive:   {Foreground: "#007ACC", Background: "#E7F1FB"},
	NavLinkPanicked: {Foreground: "#DC3545"},
	SectionDivider:  {Foreground: "#6C757D", Border: "#DEE2E6"},
	NoticeBanner:    {Foreground: "#721C24", Background: "#F8D7DA", Border: "#DC3545"},

	CodeText:        {Foreground: "#24292E"},
	CodeKeyword:     {Foreground: "#D73A49"},
	CodeString:      {Foreground: "#032F62"},
	CodeComment:     {Foreground: "#6A737D"},
	CodeNumber:      {Foreground: "#005CC5"},
	CodeFunction:    {Foreground: "#6F42C1"},
	CodeType:        {Foreground: "#22863A"},
	CodeOperator:    {Foreground: "#D73A49"},
	CodePunctuation: {Foreground: "#24292E"},
	CodeBuiltin:     {Foreground: "#E36209"},
	CodeConstant:    {Foreground: "#005CC5"},
	CodeVariable:    {Foreground: "#E36209"},
	CodeAttribute:   {Foreground: "#6F42C1"},
	CodeTag:         {Foreground: "#22863A"},
	CodeError:       {Foreground: "#B31D28", Background: "#FFEEF0"},
}

var darkStyles = map[Role]VisualStyle{
	NavLink:         {Foreground: "#E9ECEF"},
	NavLinkActive:   {Foreground: "#3D9EFF", Background: "#24253A"},
	NavLinkPanicked: {Foreground: "#FF6B7D"},
	SectionDivider:  {Foreground: "#ADB5BD", Border: "#3B3C4F"},
	NoticeBanner:    {Foreground: "#FFD7DB", Background: "#5A1E24", Border: "#FF6B7D"},

	CodeText:        {Foreground: "#E6EDF3"},
	CodeKeyword:     {Foreground: "#FF7B72"},
	CodeString:      {Foreground: "#A5D6FF"},
	CodeComment:     {Foreground: "#8B949E"},
	CodeNumber:      {Foreground: "#79C0FF"},
	CodeFunction:    {Foreground: "#D2A8FF"},
	CodeType:        {Foreground: "#7EE787"},
	CodeOperator:    {Foreground: "#FF7B72"},
	CodePunctuation: {Foreground: "#C9D1D9"},
	CodeBuiltin:     {Foreground: "#FFA657"},
	CodeConstant:    {Foreground: "#79C0FF"},
	CodeVariable:    {Foreground: "#FFA657"},
	CodeAttribute:   {Foreground: "#D2A8FF"},
	CodeTag:         {Foreground: "#7EE787"},
	CodeError:       {Foreground: "#F85149", Background: "#490202"},
}

type styleKey struct {
	mode Mode
	role Role
}

// Resolver answers style lookups. It holds no per-render state and no
// cache: callers re-resolve every visible element when the ambient
// mode changes.
type Resolver struct {
	table map[styleKey]VisualStyle
}

// NewResolver builds the lookup table from the light and dark style
// maps, verifying that both cover exactly the declared role set. A
// mismatch is a construction-time defect and fails hard rather than
// surfacing later as an undefined lookup.
func NewResolver() (*Resolver, error) {
	return newResolver(lightStyles, darkStyles)
}

func newResolver(light, dark map[Role]VisualStyle) (*Resolver, error) {
	for role := range light {
		if role < 0 || role >= roleCount {
			return nil, fmt.Errorf("theme: light table styles unknown role %d", int(role))
		}
	}
	for role := range dark {
		if role < 0 || role >= roleCount {
			return nil, fmt.Errorf("theme: dark table styles unknown role %d", int(role))
		}
	}

	table := make(map[styleKey]VisualStyle, 2*int(roleCount))
	for r := Role(0); r < roleCount; r++ {
		ls, ok := light[r]
		if !ok {
			return nil, fmt.Errorf("theme: light table missing role %s", r)
		}
		ds, ok := dark[r]
		if !ok {
			return nil, fmt.Errorf("theme: dark table missing role %s", r)
		}
		table[styleKey{mode: Light, role: r}] = ls
		table[styleKey{mode: Dark, role: r}] = ds
	}
	return &Resolver{table: table}, nil
}

// Resolve returns the style for role under mode. It is a pure lookup:
// same inputs, same output, no hidden state.
func (r *Resolver) Resolve(mode Mode, role Role) VisualStyle {
	return r.table[styleKey{mode: mode, role: role}]
}
