package models

// DefaultHero is served when the hero document is missing.
func DefaultHero() HeroContent {
	return HeroContent{
		Name:        "Alex Doe",
		Title:       "Senior Frontend Developer",
		Intro:       "I build beautiful, responsive, and performant web applications with a focus on user experience.",
		ResumeURL:   "/resume.pdf",
		ProfileURL:  "https://picsum.photos/seed/profile/400/400",
		ProfileHint: "professional headshot",
	}
}

// DefaultAbout is served when the about document is missing.
func DefaultAbout() AboutContent {
	return AboutContent{
		Bio: "Hello! I'm Alex, a passionate frontend developer with over 8 years of experience creating dynamic and " +
			"user-friendly web interfaces. My expertise lies in the React ecosystem, particularly with Next.js and " +
			"TypeScript. I thrive on solving complex problems and turning ideas into high-quality, scalable code. " +
			"When I'm not coding, you can find me exploring new hiking trails or contributing to open-source projects.",
		Skills: []Skill{
			{ID: "1", Name: "TypeScript", Category: SkillCategoryLanguage},
			{ID: "2", Name: "React", Category: SkillCategoryFramework},
			{ID: "3", Name: "Next.js", Category: SkillCategoryFramework},
			{ID: "4", Name: "Tailwind CSS", Category: SkillCategoryFramework},
			{ID: "5", Name: "Firebase", Category: SkillCategoryPlatform},
			{ID: "6", Name: "Node.js", Category: SkillCategoryTool},
			{ID: "7", Name: "GraphQL", Category: SkillCategoryTool},
			{ID: "8", Name: "Figma", Category: SkillCategoryTool},
		},
		ProfileURL:  "https://picsum.photos/seed/profile2/400/400",
		ProfileHint: "professional developer",
	}
}

// DefaultPortfolio returns a fresh copy of the built-in sample content on
// every call, so callers may mutate the result.
func DefaultPortfolio() *PortfolioData {
	return &PortfolioData{
		Hero:  DefaultHero(),
		About: DefaultAbout(),
		Projects: []Project{
			{
				ID:    "p1",
				Title: "E-Commerce Platform",
				Summary: "A full-stack e-commerce solution with a modern, clean interface, built using Next.js and Firebase. " +
					"Features product management, user authentication, and a Stripe-integrated checkout process.",
				Description: "Developed a feature-rich e-commerce platform from scratch. The application uses Next.js for " +
					"server-side rendering and static site generation, ensuring optimal performance and SEO.",
				ImageURL:  "https://picsum.photos/seed/proj1/600/400",
				ImageHint: "tech abstract",
				TechStack: []string{"Next.js", "Firebase", "Stripe", "Tailwind CSS"},
				GithubURL: "#",
				LiveURL:   "#",
				Order:     1,
			},
			{
				ID:    "p2",
				Title: "Real-time Chat Application",
				Summary: "A responsive real-time chat app built with React and Firestore. Supports multiple chat rooms, " +
					"user presence indicators, and Google authentication for easy sign-in.",
				Description: "A real-time messaging application that allows users to communicate instantly, with " +
					"updates pushed to clients as soon as messages land.",
				ImageURL:  "https://picsum.photos/seed/proj2/600/400",
				ImageHint: "code screen",
				TechStack: []string{"React", "Firebase", "TypeScript"},
				GithubURL: "#",
				LiveURL:   "#",
				Order:     2,
			},
			{
				ID:    "p3",
				Title: "Portfolio CMS Dashboard",
				Summary: "A secure admin dashboard to dynamically manage portfolio content. Features full CRUD operations, " +
					"image uploads, and role-based access control.",
				Description: "The admin dashboard for this very portfolio. It provides a CMS-like experience for " +
					"managing all portfolio content: projects, experiences, and more.",
				ImageURL:  "https://picsum.photos/seed/proj3/600/400",
				ImageHint: "modern workspace",
				TechStack: []string{"Next.js", "Server Actions", "Firebase", "shadcn/ui"},
				GithubURL: "#",
				Order:     3,
			},
		},
		Experience: []Experience{
			{
				ID:        "e1",
				Company:   "Tech Solutions Inc.",
				LogoURL:   "https://picsum.photos/seed/logo1/100/100",
				LogoHint:  "minimalist logo",
				Title:     "Senior Frontend Developer",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Description: []string{
					"Led the development of a new design system using React and Storybook, increasing team productivity by 30%.",
					"Architected and implemented a scalable frontend for a high-traffic SaaS application using Next.js.",
					"Mentored junior developers and conducted code reviews to maintain high code quality standards.",
				},
				Order: 1,
			},
			{
				ID:        "e2",
				Company:   "Web Innovators LLC",
				LogoURL:   "https://picsum.photos/seed/logo2/100/100",
				LogoHint:  "tech logo",
				Title:     "Frontend Developer",
				StartDate: "Jun 2017",
				EndDate:   "Dec 2019",
				Description: []string{
					"Developed and maintained responsive user interfaces for various client websites using React and Redux.",
					"Collaborated with designers and backend developers to deliver pixel-perfect and functional web applications.",
					"Improved website performance by optimizing assets and implementing code-splitting, reducing load times by 40%.",
				},
				Order: 2,
			},
		},
		Education: []Education{
			{
				ID:          "ed1",
				Degree:      "B.S. in Computer Science",
				Institution: "State University",
				StartDate:   "2013",
				EndDate:     "2017",
				Description: "Graduated with honors. Focused on web development, algorithms, and human-computer interaction.",
				Order:       1,
			},
		},
		Certifications: []Certification{
			{ID: "c1", Name: "Professional Cloud Developer", Provider: "Google Cloud", URL: "#", Order: 1},
			{ID: "c2", Name: "Next.js Conf Certificate", Provider: "Vercel", URL: "#", Order: 2},
		},
	}
}
