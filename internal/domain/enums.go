package domain

type CowStatus string

const (
	CowActive   CowStatus = "active"
	CowPregnant CowStatus = "pregnant"
	CowSick     CowStatus = "sick"
	CowRetired  CowStatus = "retired"
)

// ValidCowStatuses is the canonical set of accepted cow status strings.
var ValidCowStatuses = map[string]bool{
	"active": true, "pregnant": true, "sick": true, "retired": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted reminder priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type TaskType string

const (
	TaskInjection TaskType = "injection"
	TaskCheckup   TaskType = "checkup"
	TaskAI        TaskType = "ai"
	TaskCustom    TaskType = "custom"
)

// ValidTaskTypes is the canonical set of accepted reminder type strings.
var ValidTaskTypes = map[string]bool{
	"injection": true, "checkup": true, "ai": true, "custom": true,
}

// TaskTypes lists every task type in display order.
var TaskTypes = []TaskType{TaskInjection, TaskAI, TaskCheckup, TaskCustom}

type Role string

const (
	RoleWorker     Role = "worker"
	RoleTechnician Role = "technician"
	RoleDoctor     Role = "doctor"
)
