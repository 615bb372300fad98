package service

import (
	"github.com/nasarali03/Portfolio/internal/models"
)

const (
	PathHome          = "/"
	PathPortfolioAPI  = "/api/portfolio"
	PathAdminProjects = "/admin/projects"
	PathAdminSkills   = "/admin/skills"
	PathAdminMessages = "/admin/messages"
)

type sectionRoutes struct {
	admin  string
	public string
	api    string
	detail bool
}

var sections = map[string]sectionRoutes{
	models.CollectionProjects:       {admin: PathAdminProjects, public: "/projects", api: "/api/projects", detail: true},
	models.CollectionExperience:     {admin: "/admin/experience", public: "/experience", api: "/api/experience"},
	models.CollectionEducation:      {admin: "/admin/education", public: "/education", api: "/api/education"},
	models.CollectionCertifications: {admin: "/admin/certifications", public: "/certifications", api: "/api/certifications"},
	models.SingletonHero:            {admin: "/admin/hero", public: PathHome, api: "/api/hero"},
	models.SingletonAbout:           {admin: "/admin/about", public: "/about", api: "/api/about"},
	"skills":                        {admin: PathAdminSkills, public: "/about", api: "/api/about"},
}

// InvalidationPaths lists the admin route, the public routes and the cached
// API responses that display the given section. For collections the detail
// route of id is included when the section has one.
func InvalidationPaths(section, id string) []string {
	if section == models.CollectionMessages {
		return []string{PathAdminMessages}
	}

	routes, ok := sections[section]
	if !ok {
		return []string{PathHome, PathPortfolioAPI}
	}

	paths := []string{routes.admin, PathHome}
	if routes.public != PathHome {
		paths = append(paths, routes.public)
	}
	paths = append(paths, PathPortfolioAPI, routes.api)
	if routes.detail && id != "" {
		paths = append(paths, routes.api+"/"+id)
	}
	return paths
}
