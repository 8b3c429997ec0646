// Package catalog holds the built-in plan document: the eight-week
// internship plan for a collaborative task-management mobile app.
package catalog

import "github.com/alexanderramin/planview/internal/domain"

// ShortID is the display identifier of the built-in plan.
const ShortID = "APP01"

// Builtin wraps Default as a catalog entry. It has no ID and is never stored.
func Builtin() *domain.StoredPlan {
	return &domain.StoredPlan{
		ShortID: ShortID,
		Plan:    *Default(),
		Source:  domain.BuiltinRef,
	}
}

const generalObjective = "Concevoir et développer une application mobile multiplateforme permettant à une équipe de collaborer efficacement autour de la gestion de tâches, en intégrant les services de Firebase."

// Default returns a fresh copy of the built-in plan. Callers may modify
// the result without affecting later calls.
func Default() *domain.Plan {
	return &domain.Plan{
		Title:    "Application Mobile Collaborative",
		Subtitle: "Gestion de tâches en équipe avec Flutter & Firebase",
		Icon:     "smartphone",
		Overview: domain.Overview{
			Cards: []domain.StatCard{
				{Title: "Durée du projet", Value: "8 semaines", Caption: "Stage de développement", Icon: "clock"},
				{Title: "Fonctionnalités", Value: "10+", Caption: "Modules principaux", Icon: "target"},
				{Title: "Technologies", Value: "Flutter", Caption: "+ Firebase Suite", Icon: "code"},
			},
			Context: "Ce projet de stage vise à concevoir et développer une application mobile multiplateforme permettant à une équipe de collaborer efficacement autour de la gestion de tâches, en intégrant les services de Firebase.",
			Highlights: []domain.Highlight{
				{Label: "Collaboration d'équipe", Icon: "users", Color: "blue"},
				{Label: "Application mobile", Icon: "smartphone", Color: "green"},
				{Label: "Backend Firebase", Icon: "database", Color: "purple"},
			},
		},
		Objectives: domain.Objectives{
			General: generalObjective,
			Specific: []string{
				"Implémenter un système d'authentification sécurisé",
				"Gérer des projets, tâches et sous-tâches",
				"Assigner les tâches à des membres",
				"Suivre l'avancement (statuts, deadlines)",
				"Gérer les notifications, fichiers et messages",
				"Offrir une interface moderne, responsive et intuitive",
			},
			Roles: []domain.Role{
				{Name: "Administrateur", Description: "Crée les projets, gère les membres, assigne les tâches", Icon: "shield", Color: "red"},
				{Name: "Membre", Description: "Visualise et modifie ses propres tâches", Icon: "users", Color: "blue"},
				{Name: "Invité (Optionnel)", Description: "Accès limité en lecture seule", Icon: "users", Color: "gray"},
			},
		},
		Features: domain.Features{
			Items: []domain.Feature{
				{Title: "Authentification", Description: "Inscription/Connexion avec Firebase Auth, gestion du profil utilisateur", Icon: "shield", Color: "blue"},
				{Title: "Gestion des tâches", Description: "CRUD complet, affectation, statuts multiples, priorités", Icon: "check-square", Color: "green"},
				{Title: "Gestion de projets", Description: "Création, modification, suppression, ajout de membres", Icon: "users", Color: "purple"},
				{Title: "Commentaires internes", Description: "Chat en temps réel via Firestore pour chaque tâche", Icon: "message-square", Color: "orange"},
				{Title: "Fichiers joints", Description: "Upload et gestion via Firebase Storage", Icon: "paperclip", Color: "red"},
				{Title: "Notifications push", Description: "Alertes d'assignation et rappels de deadline", Icon: "bell", Color: "yellow"},
				{Title: "Vue calendrier", Description: "Planning hebdomadaire des tâches", Icon: "calendar", Color: "indigo"},
				{Title: "Dashboard statistiques", Description: "Métriques de productivité et répartition des tâches", Icon: "bar-chart", Color: "pink"},
			},
			Details: []domain.FeatureDetail{
				{Heading: "Gestion des tâches avancée", Badges: []string{"À faire", "En cours", "Terminé", "Archivé"}},
				{Heading: "Sous-tâches (checklists)", Text: "Chaque tâche peut contenir plusieurs étapes à cocher pour un suivi détaillé"},
				{Heading: "Permissions par rôle", Text: "Accès limité selon le type d'utilisateur pour une sécurité optimale"},
			},
		},
		Architecture: domain.Architecture{
			Name:        "Clean Architecture",
			Description: "Structure modulaire et maintenable",
			Tree: []domain.TreeLine{
				{Depth: 0, Label: "lib/"},
				{Depth: 1, Label: "├── core/", Comment: "Utils & constantes globales"},
				{Depth: 1, Label: "├── features/"},
				{Depth: 2, Label: "│ └── tasks/", Comment: "Feature principale"},
				{Depth: 3, Label: "│ ├── data/"},
				{Depth: 3, Label: "│ ├── domain/"},
				{Depth: 3, Label: "│ └── presentation/"},
				{Depth: 1, Label: "├── main.dart"},
			},
			ServicesTitle: "Services Firebase",
			Services: []domain.Service{
				{Name: "Firebase Auth", Role: "Authentification", Icon: "shield", Color: "blue"},
				{Name: "Firestore", Role: "Base de données NoSQL", Icon: "database", Color: "green"},
				{Name: "Cloud Messaging", Role: "Notifications", Icon: "bell", Color: "orange"},
				{Name: "Firebase Storage", Role: "Fichiers", Icon: "paperclip", Color: "purple"},
			},
		},
		Timeline: []domain.TimelineWeek{
			{Week: 1, Title: "Analyse & Setup", Tasks: []string{"Analyse du besoin", "Maquettes UI", "Structure du projet"}, Progress: 100},
			{Week: 2, Title: "Authentification", Tasks: []string{"Firebase Auth", "Profil utilisateur"}, Progress: 85},
			{Week: 3, Title: "Base de données", Tasks: []string{"Gestion de projets", "Base Firestore"}, Progress: 70},
			{Week: 4, Title: "Tâches principales", Tasks: []string{"Création tâches", "Affectation", "Statuts"}, Progress: 55},
			{Week: 5, Title: "Communication", Tasks: []string{"Commentaires", "Notifications push"}, Progress: 40},
			{Week: 6, Title: "Fonctionnalités avancées", Tasks: []string{"Fichiers joints", "Dashboard", "Sous-tâches"}, Progress: 25},
			{Week: 7, Title: "Interface & Tests", Tasks: []string{"Vue calendrier", "Filtres", "Tests"}, Progress: 10},
			{Week: 8, Title: "Finalisation", Tasks: []string{"Rapport", "Démo", "Présentation"}, Progress: 0},
		},
		Technologies: domain.TechStack{
			Items: []domain.Technology{
				{Name: "Flutter 3.x", Category: "Framework", Icon: "smartphone"},
				{Name: "Firebase Auth", Category: "Authentification", Icon: "shield"},
				{Name: "Firestore", Category: "Base de données", Icon: "database"},
				{Name: "Firebase Storage", Category: "Stockage", Icon: "paperclip"},
				{Name: "Firebase Messaging", Category: "Notifications", Icon: "bell"},
				{Name: "Provider/Riverpod", Category: "État", Icon: "git-branch"},
			},
			PackagesTitle: "Packages Flutter supplémentaires",
			Packages: []domain.PackageGroup{
				{Heading: "Gestion d'état", Items: []string{"Provider ou Riverpod"}},
				{Heading: "Firebase", Items: []string{"cloud_firestore", "firebase_auth", "firebase_messaging", "firebase_storage"}},
				{Heading: "Interface utilisateur", Items: []string{"fl_chart (statistiques)", "table_calendar (calendrier)"}},
				{Heading: "Sécurité", Items: []string{"Firebase Security Rules"}},
			},
			Results: []string{
				"Application mobile fonctionnelle (Android au minimum)",
				"Code commenté, structuré (Clean Architecture)",
				"Base Firebase bien organisée",
				"Sécurité des données (Firebase rules)",
				"Rapport technique + soutenance",
			},
		},
	}
}
