package page

// Element ids the choreography looks up
const (
	IDBeginButton = "beginBtn"
	IDLanding     = "landing"
	IDExperience  = "experience"
	IDBackground  = "bg-root"
	IDMusic       = "bgMusic"
)

// Content is the text shown by the page
type Content struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Prompt   string   `yaml:"prompt"`
	Poem     []string `yaml:"poem"`
}

// Layout selects which optional parts of the page exist
type Layout struct {
	Content Content

	// Music is bound to the audio element; nil omits the element
	Music Media

	// WithoutEffects omits the effects container so it has to be created on start
	WithoutEffects bool
}

// Build assembles the page:
//
//	body
//	├─ div#bg-root > div.effects
//	├─ section#landing > h1.title, p.subtitle, button#beginBtn
//	├─ section#experience.hidden > div.poem > p...
//	└─ audio#bgMusic
func Build(l Layout) *Document {
	d := NewDocument()
	root := d.Root()

	bg := d.CreateElement("div", IDBackground)
	root.AppendChild(bg)
	if !l.WithoutEffects {
		bg.AppendChild(d.CreateElement("div", "", ClassEffects))
	}

	landing := d.CreateElement("section", IDLanding)
	title := d.CreateElement("h1", "", ClassTitle)
	title.Text = l.Content.Title
	sub := d.CreateElement("p", "", ClassSub)
	sub.Text = l.Content.Subtitle
	begin := d.CreateElement("button", IDBeginButton)
	begin.Text = l.Content.Prompt
	landing.AppendChild(title)
	landing.AppendChild(sub)
	landing.AppendChild(begin)
	root.AppendChild(landing)

	experience := d.CreateElement("section", IDExperience, ClassHidden)
	poem := d.CreateElement("div", "", ClassPoem)
	for _, line := range l.Content.Poem {
		p := d.CreateElement("p", "")
		p.Text = line
		poem.AppendChild(p)
	}
	experience.AppendChild(poem)
	root.AppendChild(experience)

	if l.Music != nil {
		audio := d.CreateElement("audio", IDMusic)
		audio.Media = l.Music
		root.AppendChild(audio)
	}

	return d
}

// Viewport is the page size in pixels
type Viewport struct {
	Width, Height float64
}
