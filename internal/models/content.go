package models

const (
	CollectionSingletons     = "singletons"
	CollectionProjects       = "projects"
	CollectionExperience     = "experience"
	CollectionEducation      = "education"
	CollectionCertifications = "certifications"
	CollectionMessages       = "messages"

	SingletonHero  = "hero"
	SingletonAbout = "about"
)

type HeroContent struct {
	Name        string `json:"name" bson:"name"`
	Title       string `json:"title" bson:"title"`
	Intro       string `json:"intro" bson:"intro"`
	ResumeURL   string `json:"resumeUrl" bson:"resumeUrl"`
	ProfileURL  string `json:"profileUrl" bson:"profileUrl"`
	ProfileHint string `json:"profileHint" bson:"profileHint"`
}

type AboutContent struct {
	Bio         string  `json:"bio" bson:"bio"`
	Skills      []Skill `json:"skills" bson:"skills"`
	ProfileURL  string  `json:"profileUrl" bson:"profileUrl"`
	ProfileHint string  `json:"profileHint" bson:"profileHint"`
}

type Skill struct {
	ID       string        `json:"id" bson:"id"`
	Name     string        `json:"name" bson:"name"`
	Category SkillCategory `json:"category" bson:"category"`
}

type Project struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Summary     string   `json:"summary" bson:"summary"`
	Description string   `json:"description" bson:"description"`
	ImageURL    string   `json:"imageUrl" bson:"imageUrl"`
	ImageHint   string   `json:"imageHint" bson:"imageHint"`
	TechStack   []string `json:"techStack" bson:"techStack"`
	GithubURL   string   `json:"githubUrl" bson:"githubUrl"`
	LiveURL     string   `json:"liveUrl" bson:"liveUrl"`
	Order       int      `json:"order" bson:"order"`
}

type Experience struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Company     string   `json:"company" bson:"company"`
	LogoURL     string   `json:"logoUrl" bson:"logoUrl"`
	LogoHint    string   `json:"logoHint" bson:"logoHint"`
	Title       string   `json:"title" bson:"title"`
	StartDate   string   `json:"startDate" bson:"startDate"`
	EndDate     string   `json:"endDate" bson:"endDate"`
	Description []string `json:"description" bson:"description"`
	Order       int      `json:"order" bson:"order"`
}

type Education struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	StartDate   string `json:"startDate" bson:"startDate"`
	EndDate     string `json:"endDate" bson:"endDate"`
	Description string `json:"description" bson:"description"`
	Order       int    `json:"order" bson:"order"`
}

type Certification struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Provider string `json:"provider" bson:"provider"`
	URL      string `json:"url" bson:"url"`
	Order    int    `json:"order" bson:"order"`
}

// PortfolioData is assembled per request and never stored as one document.
type PortfolioData struct {
	Hero           HeroContent     `json:"hero"`
	About          AboutContent    `json:"about"`
	Projects       []Project       `json:"projects"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
}

type ContactMessage struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Message   string `json:"message" bson:"message"`
	Order     int64  `json:"order" bson:"order"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
