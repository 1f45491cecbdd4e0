package sqlite

import (
	"time"

	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"

	"gorm.io/gorm"
)

// Seed fills empty tables with a small set of sample records so a fresh
// install has something to show. Tables that already hold data are skipped.
func Seed(db *gorm.DB) error {
	seeders := []func(*gorm.DB) error{
		seedTasks,
		seedDashboardNotes,
		seedHabits,
		seedBookmarks,
		seedToolNotes,
		seedToolFiles,
		seedCommunityPosts,
		seedContactSubmissions,
	}
	for _, seed := range seeders {
		if err := seed(db); err != nil {
			return err
		}
	}
	return nil
}

func seedTasks(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.Task{})
	if err != nil || !empty {
		return err
	}

	tasks := []*entity.Task{
		{Text: "Complete quarterly financial report", Completed: false, Priority: "high"},
		{Text: "Review code pull requests for new feature", Completed: true, Priority: "high"},
		{Text: "Schedule dentist appointment", Completed: false, Priority: "medium"},
		{Text: "Update project documentation", Completed: true, Priority: "medium"},
		{Text: "Organize desk drawer", Completed: false, Priority: "low"},
	}
	for i, task := range tasks {
		task.CreatedAt = daysAgo(len(tasks) - i)
	}
	return db.Create(&tasks).Error
}

func seedDashboardNotes(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.DashboardNote{})
	if err != nil || !empty {
		return err
	}

	notes := []*entity.DashboardNote{
		{Content: "Remember to follow up with client about project proposal", Timestamp: "2024-12-20T14:30:00.000Z"},
		{Content: "Team standup moved to 10am tomorrow", Timestamp: "2024-12-22T16:45:00.000Z"},
		{Content: "Need to review Q4 budget allocations", Timestamp: "2024-12-23T09:15:00.000Z"},
	}
	for _, note := range notes {
		note.CreatedAt = note.Timestamp
	}
	return db.Create(&notes).Error
}

func seedHabits(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.Habit{})
	if err != nil || !empty {
		return err
	}

	habits := []*entity.Habit{
		{Name: "Drink 8 glasses of water", Streak: 0, CheckedToday: false},
		{Name: "Exercise for 30 minutes", Streak: 7, CheckedToday: true},
		{Name: "Read for 20 minutes", Streak: 18, CheckedToday: false},
		{Name: "Meditate", Streak: 32, CheckedToday: true},
	}
	for i, habit := range habits {
		habit.CreatedAt = daysAgo((len(habits) - i) * 7)
	}
	return db.Create(&habits).Error
}

func seedBookmarks(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.Bookmark{})
	if err != nil || !empty {
		return err
	}

	bookmarks := []*entity.Bookmark{
		{Title: "MDN Web Docs", URL: "https://developer.mozilla.org", Category: "Development"},
		{Title: "Figma Design Resources", URL: "https://www.figma.com/resources", Category: "Design"},
		{Title: "Notion Templates", URL: "https://www.notion.so/templates", Category: "Productivity"},
		{Title: "Frontend Masters", URL: "https://frontendmasters.com", Category: "Learning"},
	}
	for i, bookmark := range bookmarks {
		bookmark.CreatedAt = daysAgo((len(bookmarks) - i) * 3)
	}
	return db.Create(&bookmarks).Error
}

func seedToolNotes(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.ToolNote{})
	if err != nil || !empty {
		return err
	}

	notes := []*entity.ToolNote{
		{
			Title:   "Next.js Performance Tips",
			Content: "Enable static generation for pages that don't need real-time data. Use Image component for automatic optimization. Consider implementing incremental static regeneration for frequently updated content.",
		},
		{
			Title:   "Database Migration Notes",
			Content: "Remember to backup database before running migrations. Test migrations in development environment first. Always create rollback scripts in case something goes wrong.",
		},
		{
			Title:   "API Design Guidelines",
			Content: "Always validate input data using proper schemas. Return consistent error formats across all endpoints. Implement rate limiting to prevent abuse and ensure API stability.",
		},
	}
	for i, offset := range []int{2, 5, 8} {
		ts := daysAgo(offset)
		notes[i].Timestamp = ts
		notes[i].CreatedAt = ts
	}
	return db.Create(&notes).Error
}

func seedToolFiles(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.ToolFile{})
	if err != nil || !empty {
		return err
	}

	files := []*entity.ToolFile{
		{Name: "project-requirements.pdf", Category: "Documents", Size: "1.8 MB", Timestamp: "2024-12-20T10:30:00.000Z"},
		{Name: "logo-design-v2.png", Category: "Images", Size: "456 KB", Timestamp: "2024-12-22T14:15:00.000Z"},
		{Name: "api-routes.ts", Category: "Code", Size: "12 KB", Timestamp: "2024-12-24T09:45:00.000Z"},
		{Name: "user-analytics.csv", Category: "Data", Size: "3.2 MB", Timestamp: "2024-12-26T16:20:00.000Z"},
	}
	for _, file := range files {
		file.CreatedAt = file.Timestamp
	}
	return db.Create(&files).Error
}

func seedCommunityPosts(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.CommunityPost{})
	if err != nil || !empty {
		return err
	}

	posts := []*entity.CommunityPost{
		{
			Author:    "Sarah Chen",
			Title:     "Best practices for state management?",
			Content:   "I'm working on a large React application and wondering what state management solution works best. Currently using Context API but considering Redux or Zustand. Any recommendations from experienced developers?",
			Category:  "Help",
			CreatedAt: "2024-12-28T00:00:00.000Z",
		},
		{
			Author:    "Mike Johnson",
			Title:     "Just launched my portfolio site!",
			Content:   "After months of work, I finally deployed my new portfolio. Built with Next.js and Tailwind CSS. Would love to get feedback from the community on design and functionality!",
			Category:  "Showcase",
			CreatedAt: "2024-12-30T00:00:00.000Z",
		},
		{
			Author:    "Emma Davis",
			Title:     "Database design for multi-tenant apps",
			Content:   "What's the best approach for designing databases in multi-tenant applications? Should I use separate schemas or shared tables with tenant IDs? Looking for pros and cons of each approach.",
			Category:  "Discussion",
			CreatedAt: "2025-01-02T00:00:00.000Z",
		},
		{
			Author:    "Alex Rodriguez",
			Title:     "Welcome to the community!",
			Content:   "Hi everyone! Just joined this amazing community and excited to connect with fellow developers. Looking forward to sharing knowledge and learning from all of you.",
			Category:  "General",
			CreatedAt: "2025-01-05T00:00:00.000Z",
		},
		{
			Author:    "Lisa Thompson",
			Title:     "TypeScript vs JavaScript in 2025",
			Content:   "Still seeing debates about whether TypeScript is worth the learning curve. What's everyone's experience transitioning from JavaScript? Has TypeScript improved your development workflow?",
			Category:  "Discussion",
			CreatedAt: "2025-01-07T00:00:00.000Z",
		},
		{
			Author:    "David Kim",
			Title:     "How to optimize API response times?",
			Content:   "My API endpoints are taking too long to respond under heavy load. Currently using Node.js with Express and PostgreSQL. What caching strategies or optimization techniques would you recommend?",
			Category:  "Help",
			CreatedAt: "2025-01-09T00:00:00.000Z",
		},
	}
	return db.Create(&posts).Error
}

func seedContactSubmissions(db *gorm.DB) error {
	empty, err := tableEmpty(db, &entity.ContactSubmission{})
	if err != nil || !empty {
		return err
	}

	submissions := []*entity.ContactSubmission{
		{
			Name:      "Alex Thompson",
			Email:     "alex.thompson@email.com",
			Subject:   "Question about pricing plans",
			Message:   "Hi, I'm interested in your premium plan but have some questions about the features included. Could someone from your team reach out to discuss this further?",
			CreatedAt: daysAgo(2),
		},
		{
			Name:      "Jessica Lee",
			Email:     "j.lee@company.com",
			Subject:   "Partnership opportunity",
			Message:   "I represent a company that would like to explore potential partnership opportunities. We believe our products complement each other well. Would love to schedule a call to discuss this.",
			CreatedAt: daysAgo(1),
		},
	}
	return db.Create(&submissions).Error
}

func tableEmpty(db *gorm.DB, model any) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func daysAgo(days int) string {
	return time.Now().
		UTC().
		AddDate(0, 0, -days).
		Format(utils.ISOMillis)
}
