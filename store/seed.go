// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/Mayank8528/claimwise-new2/models"
)

// SeedClaims returns the demo claims loaded into an empty store.
func SeedClaims() []models.ClaimDetail {
	now := time.Now().UTC()

	return []models.ClaimDetail{
		{
			ClaimSummary: models.ClaimSummary{
				ID:         "CLM-2024-001",
				Claimant:   "John Smith",
				PolicyNo:   "POL-2024-12345",
				LossType:   "Auto Accident",
				CreatedAt:  now,
				Severity:   models.SeverityHigh,
				Confidence: 0.87,
				Queue:      "Auto Claims",
				Status:     models.StatusProcessing,
				Amount:     "$15,000",
			},
			PolicyNumber: "POL-2024-12345",
			Email:        "john.smith@example.com",
			Description:  "Multi-vehicle collision on highway",
			Rationale: "High severity due to multiple vehicles involved and reported injuries. " +
				"Confidence score is high based on clear police report documentation.",
			Evidence: []models.Evidence{
				{Source: "police_report.pdf", Page: 2, Span: "driver reports broken leg and internal injuries"},
				{Source: "fnol_form.pdf", Page: 1, Span: "estimated repair cost $15,000 for vehicle damage"},
			},
			Attachments: []models.Attachment{
				{Filename: "fnol_form.pdf", URL: "/files/fnol_form.pdf", Size: "2.4 MB"},
				{Filename: "police_report.pdf", URL: "/files/police_report.pdf", Size: "1.8 MB"},
			},
			Assignee: "Team Lead A",
		},
		{
			ClaimSummary: models.ClaimSummary{
				ID:         "CLM-2024-002",
				Claimant:   "Jane Doe",
				PolicyNo:   "POL-2024-12346",
				LossType:   "Property Damage",
				CreatedAt:  now.Add(-24 * time.Hour),
				Severity:   models.SeverityMedium,
				Confidence: 0.72,
				Queue:      "Standard",
				Status:     models.StatusCompleted,
				Amount:     "$8,500",
			},
			PolicyNumber: "POL-2024-12346",
			Email:        "jane.doe@example.com",
			Description:  "Water damage to residential property",
			Rationale: "Medium severity due to water damage extent. " +
				"Confidence is moderate as visual assessment needed.",
			Evidence: []models.Evidence{
				{Source: "damage_assessment.pdf", Page: 1, Span: "water damage affecting 2 rooms, estimated $8,500"},
			},
			Attachments: []models.Attachment{
				{Filename: "damage_assessment.pdf", URL: "/files/damage_assessment.pdf", Size: "3.2 MB"},
			},
			Assignee: "Adjuster B",
		},
	}
}

// SeedQueues returns the routing queues. Queues are read-only in this
// system; there are no create/update/delete operations.
func SeedQueues() []models.Queue {
	return []models.Queue{
		{ID: "auto-claims", Name: "Auto Claims", Assignees: []string{"John Johnson", "Sarah Williams", "Mike Davis"}},
		{ID: "property-damage", Name: "Property Damage", Assignees: []string{"Emily Brown", "Robert Wilson", "Lisa Martinez"}},
		{ID: "fraud-detection", Name: "Fraud Detection", Assignees: []string{"Tom Anderson", "Jennifer Lee", "David Garcia"}},
		{ID: "standard", Name: "Standard Claims", Assignees: []string{"Paul Taylor", "Mary White", "James Martin"}},
		{ID: "priority", Name: "Priority Queue", Assignees: []string{"Margaret Miller", "Charles Thomas", "Sandra Jackson"}},
	}
}
