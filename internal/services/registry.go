package services

// ServiceContainer aggregates every service so the app wiring passes a
// single value into handler construction.
type ServiceContainer struct {
	UserService               UserService
	InteractionService        InteractionService
	GeneratedCandidateService GeneratedCandidateService
	PipelineService           PipelineService
	OutreachService           OutreachService
	JDService                 JDService
	CoachService              CoachService
}
