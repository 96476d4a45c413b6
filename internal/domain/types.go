package domain

import "strings"

// Action kinds understood by ApplyActions. The set is closed: unknown
// kinds leave the content untouched.
const (
	ActionReplace = "replace"
	ActionPrepend = "prepend"
	ActionAppend  = "append"
)

// Action is a single pure text transform applied to raw template source
// before rendering. Replace performs a literal find/replace-all using Find
// and Replace; Prepend and Append splice Text around the content.
type Action struct {
	Kind    string
	Find    string
	Replace string
	Text    string
}

// Apply transforms content according to the action kind.
func (a Action) Apply(content string) string {
	switch a.Kind {
	case ActionReplace:
		return strings.ReplaceAll(content, a.Find, a.Replace)
	case ActionPrepend:
		return a.Text + content
	case ActionAppend:
		return content + a.Text
	}
	return content
}

// TargetSpec names the file a rendered template is compared against.
type TargetSpec struct {
	Target string
}

// TemplateDescription declares one managed template: where its source
// lives, which file it renders to, and the text actions applied to the
// source before rendering.
type TemplateDescription struct {
	Source  string
	Target  TargetSpec
	Actions []Action
}

// ApplyActions runs the description's actions over content in order.
func (t TemplateDescription) ApplyActions(content string) string {
	for _, action := range t.Actions {
		content = action.Apply(content)
	}
	return content
}
