package seed

import "portfolio/internal/model"

// Fixed dataset inserted into an empty database. French text is the
// base (fallback) language; English lives in the i18n rows.

type profileData struct {
	Name        string
	Title       string
	Email       string
	Phone       string
	Location    string
	Description string
	EnTitle     string
	EnDesc      string
	StartYear   int
}

type projectData struct {
	Title        string
	Description  string
	Image        string
	EnTitle      string
	EnDesc       string
	Technologies []string
}

type experienceData struct {
	StartYear int
	EndYear   *int
	Fr        experienceText
	En        experienceText
}

type experienceText struct {
	Title    string
	Subtitle string
	Desc     string
}

var defaultProfile = profileData{
	Name:        "Mathias Legrand",
	Title:       "Technicien DevOps",
	Email:       "contact@mathiaslegrand.cloud",
	Phone:       "+33 6 00 00 00 00",
	Location:    "France",
	Description: "Technicien DevOps passionné par l'automatisation, la supervision et les infrastructures auto-hébergées.",
	EnTitle:     "DevOps Technician",
	EnDesc:      "DevOps technician with a passion for automation, monitoring and self-hosted infrastructure.",
	StartYear:   2022,
}

var defaultSocial = model.Social{
	Github:   "https://github.com/mathiaslegrand",
	Linkedin: "https://www.linkedin.com/in/mathiaslegrand",
}

var defaultSkills = []model.Skill{
	{Name: "Linux", Level: 90},
	{Name: "Docker", Level: 85},
	{Name: "Python", Level: 80},
	{Name: "Zabbix", Level: 80},
	{Name: "Grafana", Level: 75},
	{Name: "CI/CD", Level: 75},
	{Name: "Ansible", Level: 70},
	{Name: "Réseaux", Level: 70},
	{Name: "MariaDB", Level: 65},
	{Name: "Bash", Level: 85},
}

var defaultProjects = []projectData{
	{
		Title:        "Portfolio bilingue",
		Description:  "Site portfolio FR/EN avec administration intégrée, base MariaDB et envoi d'emails.",
		Image:        "/images/projects/portfolio.png",
		EnTitle:      "Bilingual portfolio",
		EnDesc:       "FR/EN portfolio website with a built-in admin area, MariaDB storage and email delivery.",
		Technologies: []string{"MariaDB", "Docker", "Nginx"},
	},
	{
		Title:        "Homelab auto-hébergé",
		Description:  "Infrastructure personnelle conteneurisée : supervision, sauvegardes, reverse proxy et déploiements automatisés.",
		Image:        "/images/projects/homelab.png",
		EnTitle:      "Self-hosted homelab",
		EnDesc:       "Containerized personal infrastructure: monitoring, backups, reverse proxy and automated deployments.",
		Technologies: []string{"Docker", "Ansible", "Grafana", "Zabbix"},
	},
	{
		Title:        "Addons Zabbix",
		Description:  "Modules Python pour Zabbix : collecte personnalisée, alertes enrichies et intégrations externes.",
		Image:        "/images/projects/zabbix-addons.png",
		EnTitle:      "Zabbix addons",
		EnDesc:       "Python modules for Zabbix: custom collection, enriched alerting and external integrations.",
		Technologies: []string{"Python", "Zabbix"},
	},
}

var defaultExperiences = []experienceData{
	{
		StartYear: 2022,
		EndYear:   intPtr(2024),
		Fr: experienceText{
			Title:    "Technicien DevOps",
			Subtitle: "KEENTON SAS (CDI)",
			Desc:     "Gestion d'une infrastructure cloud auto-hébergée, supervision (Zabbix, Grafana), incidents, addons Zabbix en Python, CI/CD, conteneurisation, sauvegardes.",
		},
		En: experienceText{
			Title:    "DevOps Technician",
			Subtitle: "KEENTON SAS (Full-time)",
			Desc:     "Managed self-hosted cloud infrastructure, observability (Zabbix, Grafana), incident response, Python Zabbix addons, CI/CD, containerization, backups.",
		},
	},
	{
		StartYear: 2019,
		EndYear:   nil,
		Fr: experienceText{
			Title:    "Formation & Homelab",
			Subtitle: "Auto-formation",
			Desc:     "Bases Linux, réseaux, Python. Homelab (Docker, Python, gestion de configuration) et projets personnels.",
		},
		En: experienceText{
			Title:    "Education & Homelab",
			Subtitle: "Self-learning",
			Desc:     "Strengthened Linux, networking, Python. Built a homelab (Docker, Python, config management) and personal projects.",
		},
	},
}

func intPtr(v int) *int { return &v }
