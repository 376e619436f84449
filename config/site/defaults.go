package site

// Default is the compiled-in site definition.
// Every call builds a fresh value, so callers never share the menu or contacts.
func Default() SiteConfig {
	contacts := EmptyContacts()
	// email stays empty: the published contact list is twitter, github and linkedin only
	contacts[ContactTwitter] = "ben_j_lindsay"
	contacts[ContactGitHub] = "benlindsay"
	contacts[ContactLinkedIn] = "benjlindsay"

	return SiteConfig{
		URL:               "https://benjlindsay.com",
		PathPrefix:        "/",
		Title:             "Ben Lindsay",
		Subtitle:          "Musings about data science, tech, and whatever else I feel like",
		Copyright:         "© 2019 All rights reserved.",
		DisqusShortname:   "benlindsay",
		PostsPerPage:      10,
		GoogleAnalyticsID: "UA-71898636-1",
		UseKatex:          true,
		Menu: Menu{
			{Label: "Articles", Path: "/"},
			{Label: "About me", Path: "/pages/about"},
			{Label: "Contact me", Path: "/pages/contacts"},
		},
		Author: AuthorProfile{
			Name:     "Ben Lindsay",
			Photo:    "/photo.jpg",
			Bio:      "Data Scientist / Pythonista / Recovering Academic in the Twin Cities area",
			Contacts: contacts,
		},
	}
}
