// Package prompts renders the generation requests sent to the LLM. Each
// section has a fixed system instruction (persona and output-format contract)
// and a templated user instruction. The embedded format examples must match
// the parsing schema field-for-field; edit both together.
package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

type Prompts struct {
	System  SystemPrompts  `yaml:"system"`
	Section SectionPrompts `yaml:"section"`
}

type SystemPrompts struct {
	Assistant       string `yaml:"assistant"`
	Screenwriter    string `yaml:"screenwriter"`
	Cinematographer string `yaml:"cinematographer"`
	Scriptwriter    string `yaml:"scriptwriter"`
	MusicSupervisor string `yaml:"music_supervisor"`
	Thumbnail       string `yaml:"thumbnail"`
	Strategist      string `yaml:"strategist"`
	Complete        string `yaml:"complete"`
}

type SectionPrompts struct {
	Title      string `yaml:"title"`
	Hook       string `yaml:"hook"`
	Screenplay string `yaml:"screenplay"`
	Shots      string `yaml:"shots"`
	Dialogue   string `yaml:"dialogue"`
	Camera     string `yaml:"camera"`
	Music      string `yaml:"music"`
	Thumbnails string `yaml:"thumbnails"`
	Posting    string `yaml:"posting"`
	Complete   string `yaml:"complete"`
}

type SectionParams struct {
	Idea     string
	Platform string
	Duration string
	Audience string
	Tone     string
}

type ScreenplayParams struct {
	SectionParams
	TotalTime  string
	SceneCount int
	Timings    string
}

type DialogueParams struct {
	SectionParams
	SceneOutline string
}

type CompleteParams struct {
	SectionParams
	TotalTime  string
	SceneCount int
	Timings    string
}

// Load reads prompts.yaml when present, falling back to the built-in set.
// Fields missing from the file keep their defaults.
func Load() (*Prompts, error) {
	if _, err := os.Stat(defaultPromptsPath); err != nil {
		return Default(), nil
	}
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderTitle(params SectionParams) (string, error) {
	return render(p.Section.Title, params)
}

func (p *Prompts) RenderHook(params SectionParams) (string, error) {
	return render(p.Section.Hook, params)
}

func (p *Prompts) RenderScreenplay(params ScreenplayParams) (string, error) {
	return render(p.Section.Screenplay, params)
}

func (p *Prompts) RenderShots(params SectionParams) (string, error) {
	return render(p.Section.Shots, params)
}

func (p *Prompts) RenderDialogue(params DialogueParams) (string, error) {
	return render(p.Section.Dialogue, params)
}

func (p *Prompts) RenderCamera(params SectionParams) (string, error) {
	return render(p.Section.Camera, params)
}

func (p *Prompts) RenderMusic(params SectionParams) (string, error) {
	return render(p.Section.Music, params)
}

func (p *Prompts) RenderThumbnails(params SectionParams) (string, error) {
	return render(p.Section.Thumbnails, params)
}

func (p *Prompts) RenderPosting(params SectionParams) (string, error) {
	return render(p.Section.Posting, params)
}

func (p *Prompts) RenderComplete(params CompleteParams) (string, error) {
	return render(p.Section.Complete, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
