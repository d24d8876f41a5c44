package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler recomputes summaries for the current academic year every
// night at 02:00, so standings reflect marks entered during the day even
// when nobody triggers a recompute by hand.
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 2 * * *", func() {
		log.Println("Running scheduled summary recomputation...")
		RecomputeCurrentScopes(db)
	})
	if err != nil {
		log.Printf("Failed to register summary recompute job: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}

// RecomputeCurrentScopes recomputes semester summaries for every semester
// of the current academic year, then the yearly summaries.
func RecomputeCurrentScopes(db *sql.DB) {
	var yearID string
	err := db.QueryRow(`SELECT id FROM academic_years WHERE is_current = true LIMIT 1`).Scan(&yearID)
	if err == sql.ErrNoRows {
		log.Println("No current academic year set, skipping scheduled recompute")
		return
	}
	if err != nil {
		log.Printf("Failed to look up current academic year: %v", err)
		return
	}

	store := NewSQLStore(db)

	rows, err := db.Query(`SELECT id FROM semesters WHERE academic_year_id = $1`, yearID)
	if err != nil {
		log.Printf("Failed to list semesters for academic year %s: %v", yearID, err)
		return
	}
	defer rows.Close()

	var semesterIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Printf("Failed to scan semester id: %v", err)
			return
		}
		semesterIDs = append(semesterIDs, id)
	}

	for _, semesterID := range semesterIDs {
		if _, err := ComputeSemesterResults(store, store, yearID, semesterID); err != nil {
			log.Printf("Scheduled semester recompute failed for %s: %v", semesterID, err)
		}
	}

	if _, err := ComputeYearlyResults(store, store, yearID); err != nil {
		log.Printf("Scheduled yearly recompute failed for %s: %v", yearID, err)
	}
}
