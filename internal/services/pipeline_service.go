package services

import (
	"time"

	"talentswipe_backend/internal/models"
	"talentswipe_backend/internal/repositories"
	"talentswipe_backend/internal/services/dto"
	"talentswipe_backend/pkg/apperrors"
)

// PipelineService owns the interview-stage state machine. Clients only
// request "advance" or "reject"; the target stage is always computed
// server-side from the transition table, so a stage can never be skipped.
type PipelineService interface {
	Enter(req *dto.EnterPipelineRequest) (*models.PipelineCandidate, error)
	GetForUser(userID string) ([]models.PipelineCandidate, error)
	GetByID(id string) (*models.PipelineCandidate, error)
	Advance(id string, feedback string) (*models.PipelineCandidate, error)
	Reject(id string, feedback string) (*models.PipelineCandidate, error)

	// Offer sub-flow
	SetOfferDetails(id string, req *dto.OfferDetailsRequest) (*models.PipelineCandidate, error)
	SendOffer(id string) (*models.PipelineCandidate, error)
	RespondToOffer(id string, accepted bool) (*models.PipelineCandidate, error)
}

type pipelineService struct {
	pipelineRepo repositories.PipelineRepository
}

func NewPipelineService(pipelineRepo repositories.PipelineRepository) PipelineService {
	return &pipelineService{pipelineRepo: pipelineRepo}
}

func (s *pipelineService) Enter(req *dto.EnterPipelineRequest) (*models.PipelineCandidate, error) {
	pc := &models.PipelineCandidate{
		UserID:        req.UserID,
		CandidateID:   req.CandidateID,
		CandidateName: req.CandidateName,
		Stage:         models.StageFirstInterview,
		Status:        models.PipelineStatusScheduled,
		Score:         req.Score,
		Notes:         req.Notes,
	}
	if err := s.pipelineRepo.Create(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

func (s *pipelineService) GetForUser(userID string) ([]models.PipelineCandidate, error) {
	candidates, err := s.pipelineRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return candidates, nil
}

func (s *pipelineService) GetByID(id string) (*models.PipelineCandidate, error) {
	return s.load(id)
}

// Advance moves the candidate to the single successor of their current
// stage. Terminal stages have no successor and yield a 400.
func (s *pipelineService) Advance(id string, feedback string) (*models.PipelineCandidate, error) {
	pc, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if models.TerminalStage(pc.Stage) {
		return nil, apperrors.ErrTerminalStage
	}

	next, ok := models.NextStage(pc.Stage)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("pipeline", "No forward transition from stage "+string(pc.Stage))
	}

	pc.Stage = next
	if next == models.StageHired {
		pc.Status = models.PipelineStatusHired
	} else {
		pc.Status = models.PipelineStatusProgressed
	}
	if feedback != "" {
		pc.Feedback = feedback
	}

	if err := s.pipelineRepo.Update(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

// Reject is the side transition: any non-terminal stage lands directly on
// rejected, bypassing the forward chain. rejected is absorbing.
func (s *pipelineService) Reject(id string, feedback string) (*models.PipelineCandidate, error) {
	pc, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if models.TerminalStage(pc.Stage) {
		return nil, apperrors.ErrTerminalStage
	}

	pc.Stage = models.StageRejected
	pc.Status = models.PipelineStatusRejected
	if feedback != "" {
		pc.Feedback = feedback
	}

	if err := s.pipelineRepo.Update(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

// SetOfferDetails seeds or updates the offer form. Only candidates
// currently at offer_stage are eligible.
func (s *pipelineService) SetOfferDetails(id string, req *dto.OfferDetailsRequest) (*models.PipelineCandidate, error) {
	pc, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if pc.Stage != models.StageOfferStage {
		return nil, apperrors.ErrOfferNotEligible
	}

	pc.OfferSalary = req.Salary
	pc.OfferPosition = req.Position
	pc.OfferStartDate = req.StartDate
	pc.OfferDeadline = req.Deadline

	if err := s.pipelineRepo.Update(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

// SendOffer refuses to mark the offer sent while salary, start date or
// position is empty.
func (s *pipelineService) SendOffer(id string) (*models.PipelineCandidate, error) {
	pc, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if pc.Stage != models.StageOfferStage {
		return nil, apperrors.ErrOfferNotEligible
	}

	missing := map[string]string{}
	if pc.OfferSalary == "" {
		missing["salary"] = "This field is required"
	}
	if pc.OfferStartDate == "" {
		missing["start_date"] = "This field is required"
	}
	if pc.OfferPosition == "" {
		missing["position"] = "This field is required"
	}
	if len(missing) > 0 {
		return nil, apperrors.ValidationError(missing)
	}

	now := time.Now()
	pc.OfferSent = true
	pc.OfferSentDate = &now

	if err := s.pipelineRepo.Update(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

// RespondToOffer records the candidate's decision. Acceptance is the only
// edge into hired besides a plain advance from offer_stage.
func (s *pipelineService) RespondToOffer(id string, accepted bool) (*models.PipelineCandidate, error) {
	pc, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if !pc.OfferSent {
		return nil, apperrors.ErrInvalidOperation("pipeline", "No offer has been sent to this candidate")
	}
	if pc.OfferAccepted != nil {
		return nil, apperrors.ErrInvalidOperation("pipeline", "Offer response already recorded")
	}

	now := time.Now()
	pc.OfferAccepted = &accepted
	pc.OfferResponseDate = &now

	if accepted {
		pc.Stage = models.StageHired
		pc.Status = models.PipelineStatusHired
	} else {
		// Declined offers keep the candidate at offer_stage; the recruiter
		// decides whether to renegotiate or reject.
		pc.Status = models.PipelineStatusOfferDeclined
	}

	if err := s.pipelineRepo.Update(pc); err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}

func (s *pipelineService) load(id string) (*models.PipelineCandidate, error) {
	pc, err := s.pipelineRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrPipelineCandidateNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.ErrDatabase(err)
	}
	return pc, nil
}
