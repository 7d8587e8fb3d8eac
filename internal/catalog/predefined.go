package catalog

import "github.com/alexanderramin/herdsync/internal/domain"

// Predefined returns fresh copies of the built-in synchronization methods.
func Predefined() []*domain.Protocol {
	return []*domain.Protocol{
		{
			ID:                   "ovsynch",
			Name:                 "Ovsynch",
			Description:          "Standard Ovsynch protocol for timed AI",
			DurationDays:         10,
			HasWorkforceSettings: true,
			Steps: []domain.ProtocolStep{
				{
					ID: "1", Day: 0, Title: "GnRH Injection",
					Description: "Administer GnRH (100 μg) intramuscularly",
					HormoneType: "GnRH",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 20, TechnicianPerSubjects: 15},
				},
				{
					ID: "2", Day: 7, Title: "PGF2α Injection",
					Description: "Administer PGF2α (25 mg) intramuscularly",
					HormoneType: "PGF2α",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 20, TechnicianPerSubjects: 15},
				},
				{
					ID: "3", Day: 9, Title: "GnRH Injection",
					Description: "Second GnRH injection (100 μg)",
					HormoneType: "GnRH",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 20, TechnicianPerSubjects: 15},
				},
				{
					ID: "4", Day: 10, Title: "Artificial Insemination",
					Description: "Perform timed AI 16-20 hours after second GnRH",
					Notes:       "Use high-quality semen from selected bull",
					Ratios:      domain.CapacityRatio{TechnicianPerSubjects: 10},
				},
			},
		},
		{
			ID:                   "cidr",
			Name:                 "CIDR Protocol",
			Description:          "CIDR-based synchronization protocol",
			DurationDays:         9,
			HasWorkforceSettings: true,
			Steps: []domain.ProtocolStep{
				{
					ID: "1", Day: 0, Title: "CIDR Insertion",
					Description: "Insert CIDR device and administer GnRH",
					HormoneType: "GnRH",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 15, TechnicianPerSubjects: 12},
				},
				{
					ID: "2", Day: 7, Title: "CIDR Removal + PGF2α",
					Description: "Remove CIDR and inject PGF2α",
					HormoneType: "PGF2α",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 15, TechnicianPerSubjects: 12},
				},
				{
					ID: "3", Day: 8, Title: "Heat Detection",
					Description: "Monitor for signs of estrus",
					Notes:       "Use heat detection aids if available",
					Ratios:      domain.CapacityRatio{WorkerPerSubjects: 25},
				},
				{
					ID: "4", Day: 9, Title: "Artificial Insemination",
					Description: "AI based on heat detection or timed protocol",
					Ratios:      domain.CapacityRatio{TechnicianPerSubjects: 10},
				},
			},
		},
		{
			ID:           "selectsynch",
			Name:         "Select Synch",
			Description:  "Modified synchronization with heat detection",
			DurationDays: 10,
			Steps: []domain.ProtocolStep{
				{ID: "1", Day: 0, Title: "GnRH Injection", Description: "First GnRH injection", HormoneType: "GnRH"},
				{ID: "2", Day: 7, Title: "PGF2α Injection", Description: "Prostaglandin injection", HormoneType: "PGF2α"},
				{ID: "3", Day: 8, Title: "Heat Detection Begins", Description: "Start monitoring for estrus signs"},
				{ID: "4", Day: 10, Title: "AI or GnRH", Description: "AI if in heat, otherwise GnRH + timed AI"},
			},
		},
	}
}
