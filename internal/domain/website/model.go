package website

// Frontend holds the three client-side files of a generated codebase.
type Frontend struct {
	IndexHTML string `json:"index_html"`
	StylesCSS string `json:"styles_css"`
	ScriptJS  string `json:"script_js"`
}

// Codebase is the structured multi-file artifact produced by the generate
// stage and replaced wholesale by the edit stage. It is caller-held and
// never persisted; callers resubmit it by value for further edits.
type Codebase struct {
	Frontend     Frontend `json:"frontend"`
	Backend      string   `json:"backend"`
	Instructions string   `json:"instructions"`
	ProjectIdea  string   `json:"project_idea,omitempty"`
}
