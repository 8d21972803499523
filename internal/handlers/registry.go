package handlers

// AppHandlers aggregates every route handler for registration in one
// place.
type AppHandlers struct {
	UserHandler               *UserHandler
	InteractionHandler        *InteractionHandler
	GeneratedCandidateHandler *GeneratedCandidateHandler
	PipelineHandler           *PipelineHandler
	OutreachHandler           *OutreachHandler
	JDHandler                 *JDHandler
	CoachHandler              *CoachHandler
	TrainingHandler           *TrainingHandler
	HealthHandler             *HealthHandler
}
