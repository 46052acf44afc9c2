package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/squadplay/squad-engine/internal/api/middleware"
	"github.com/squadplay/squad-engine/internal/court"
	"github.com/squadplay/squad-engine/internal/domain"
	"github.com/squadplay/squad-engine/internal/judge"
	"github.com/squadplay/squad-engine/internal/ledger"
	"github.com/squadplay/squad-engine/internal/power"
)

// Handler carries the engine services behind the REST surface
type Handler struct {
	ledger ledger.Ledger
	powers power.Registry
	court  court.Court
	judges judge.Judge
}

// NewHandler creates a new REST handler
func NewHandler(l ledger.Ledger, powers power.Registry, c court.Court, judges judge.Judge) *Handler {
	return &Handler{
		ledger: l,
		powers: powers,
		court:  c,
		judges: judges,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetBalance handles GET /api/v1/squads/:squad_id/balance
func (h *Handler) GetBalance(c *gin.Context) {
	squadID := c.Param("squad_id")

	caller, err := middleware.Caller(c, c.Query("player_id"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	balance, err := h.ledger.GetBalance(c.Request.Context(), caller.PlayerID, squadID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{
		Balance:        balance.Balance,
		LifetimeEarned: balance.LifetimeEarned,
	})
}

// ListTransactions handles GET /api/v1/squads/:squad_id/transactions
func (h *Handler) ListTransactions(c *gin.Context) {
	squadID := c.Param("squad_id")

	caller, err := middleware.Caller(c, c.Query("player_id"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	transactions, total, err := h.ledger.History(c.Request.Context(), caller.PlayerID, squadID, limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := listTransactionsResponse{
		Transactions: make([]transactionResponse, 0, len(transactions)),
		Total:        total,
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, *toTransactionResponse(&transactions[i]))
	}

	c.JSON(http.StatusOK, response)
}

// Earn handles POST /api/v1/squads/:squad_id/earn (game server only)
func (h *Handler) Earn(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req earnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txn, err := h.ledger.Earn(c.Request.Context(), req.PlayerID, squadID, req.Amount, parseSource(req.Source), req.ReferenceID, toMetadata(req.Metadata))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTransactionResponse(txn))
}

// Spend handles POST /api/v1/squads/:squad_id/spend
func (h *Handler) Spend(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req spendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	caller, err := middleware.Caller(c, req.PlayerID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.ledger.Spend(c.Request.Context(), caller.PlayerID, squadID, req.Amount, parseSource(req.Source), req.ReferenceID, toMetadata(req.Metadata))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, spendResponse{
		Success:     result.Success,
		Balance:     result.Balance,
		Transaction: toTransactionResponse(result.Transaction),
	})
}

// DailyLogin handles POST /api/v1/squads/:squad_id/daily-login
func (h *Handler) DailyLogin(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req dailyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondValidationError(c, err.Error())
		return
	}

	caller, err := middleware.Caller(c, req.PlayerID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.ledger.DailyLoginReward(c.Request.Context(), caller.PlayerID, squadID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dailyLoginResponse{
		AlreadyClaimed:  result.AlreadyClaimed,
		ConsecutiveDays: result.ConsecutiveDays,
		Amount:          result.Amount,
		Balance:         result.Balance,
	})
}

// ListPowers handles GET /api/v1/squads/:squad_id/powers
func (h *Handler) ListPowers(c *gin.Context) {
	squadID := c.Param("squad_id")

	caller, err := middleware.Caller(c, c.Query("player_id"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	grants, err := h.powers.ListActive(c.Request.Context(), caller, squadID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]grantResponse, 0, len(grants))
	for i := range grants {
		response = append(response, *toGrantResponse(&grants[i]))
	}

	c.JSON(http.StatusOK, gin.H{"powers": response})
}

// GrantPower handles POST /api/v1/squads/:squad_id/powers (game server only)
func (h *Handler) GrantPower(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req grantPowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	grant, err := h.powers.Grant(c.Request.Context(), power.GrantInput{
		Type:      domain.PowerType(req.Type),
		OwnerID:   req.OwnerID,
		SquadID:   squadID,
		ExpiresAt: req.ExpiresAt,
		Metadata:  toMetadata(req.Metadata),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGrantResponse(grant))
}

// ConsumePower handles POST /api/v1/squads/:squad_id/powers/:grant_id/consume
func (h *Handler) ConsumePower(c *gin.Context) {
	squadID := c.Param("squad_id")

	grantID, err := strconv.ParseInt(c.Param("grant_id"), 10, 64)
	if err != nil {
		respondValidationError(c, "grant_id must be an integer")
		return
	}

	var req consumePowerRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondValidationError(c, err.Error())
		return
	}

	caller, err := middleware.Caller(c, req.PlayerID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.powers.Consume(c.Request.Context(), caller, power.ConsumeInput{
		GrantID:  grantID,
		SquadID:  squadID,
		TargetID: req.TargetID,
		Metadata: toMetadata(req.Metadata),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, consumePowerResponse{
		Grant:  toGrantResponse(result.Grant),
		Target: toTargetResponse(result.Target),
	})
}

// CancelPower handles POST /api/v1/squads/:squad_id/powers/:grant_id/cancel
// (game server only)
func (h *Handler) CancelPower(c *gin.Context) {
	grantID, err := strconv.ParseInt(c.Param("grant_id"), 10, 64)
	if err != nil {
		respondValidationError(c, "grant_id must be an integer")
		return
	}

	var req cancelPowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	performed, err := h.powers.Cancel(c.Request.Context(), grantID, req.CancelledBy, req.Reason)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": performed})
}

// IsTargeted handles GET /api/v1/squads/:squad_id/targeted
func (h *Handler) IsTargeted(c *gin.Context) {
	squadID := c.Param("squad_id")

	caller, err := middleware.Caller(c, c.Query("player_id"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	targeted, err := h.powers.IsTargeted(c.Request.Context(), caller.PlayerID, squadID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, targetedResponse{Targeted: targeted})
}

// CreateChallenge handles POST /api/v1/squads/:squad_id/challenges
func (h *Handler) CreateChallenge(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req createChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	caller, err := middleware.Caller(c, req.PlayerID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	challenge, err := h.court.Create(c.Request.Context(), caller, court.CreateInput{
		SquadID:        squadID,
		TargetID:       req.TargetID,
		Kind:           domain.ChallengeKind(req.Kind),
		RelatedGrantID: req.RelatedGrantID,
		RelatedEventID: req.RelatedEventID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toChallengeResponse(challenge))
}

// ListChallenges handles GET /api/v1/squads/:squad_id/challenges
func (h *Handler) ListChallenges(c *gin.Context) {
	squadID := c.Param("squad_id")

	limit, offset, err := parsePagination(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var status *domain.ChallengeStatus
	if s := c.Query("status"); s != "" {
		parsed := domain.ChallengeStatus(s)
		status = &parsed
	}

	challenges, total, err := h.court.List(c.Request.Context(), squadID, status, limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := listChallengesResponse{
		Challenges: make([]challengeResponse, 0, len(challenges)),
		Total:      total,
	}
	for i := range challenges {
		response.Challenges = append(response.Challenges, *toChallengeResponse(&challenges[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetChallenge handles GET /api/v1/challenges/:challenge_id
func (h *Handler) GetChallenge(c *gin.Context) {
	challengeID, err := strconv.ParseInt(c.Param("challenge_id"), 10, 64)
	if err != nil {
		respondValidationError(c, "challenge_id must be an integer")
		return
	}

	challenge, err := h.court.Get(c.Request.Context(), challengeID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toChallengeResponse(challenge))
}

// Vote handles POST /api/v1/challenges/:challenge_id/votes
func (h *Handler) Vote(c *gin.Context) {
	challengeID, err := strconv.ParseInt(c.Param("challenge_id"), 10, 64)
	if err != nil {
		respondValidationError(c, "challenge_id must be an integer")
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	caller, err := middleware.Caller(c, req.PlayerID)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	challenge, err := h.court.Vote(c.Request.Context(), caller, challengeID, domain.VoteChoice(req.Choice))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toChallengeResponse(challenge))
}

// GetTodayJudge handles GET /api/v1/squads/:squad_id/judge/today
func (h *Handler) GetTodayJudge(c *gin.Context) {
	squadID := c.Param("squad_id")

	assignment, err := h.judges.GetToday(c.Request.Context(), squadID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if assignment == nil {
		respondDomainError(c, domain.ErrNoJudgeAssigned)
		return
	}

	c.JSON(http.StatusOK, toJudgeAssignmentResponse(assignment))
}

// AssignJudge handles POST /api/v1/squads/:squad_id/judge (game server only)
func (h *Handler) AssignJudge(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req assignJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	assignment, err := h.judges.Assign(c.Request.Context(), squadID, req.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toJudgeAssignmentResponse(assignment))
}

// JudgeBonus handles POST /api/v1/squads/:squad_id/judge/bonus (game server only)
func (h *Handler) JudgeBonus(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req judgeAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txn, err := h.judges.ApplyBonus(c.Request.Context(), squadID, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(txn))
}

// JudgePenalty handles POST /api/v1/squads/:squad_id/judge/penalty
// (game server only)
func (h *Handler) JudgePenalty(c *gin.Context) {
	squadID := c.Param("squad_id")

	var req judgeAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txn, err := h.judges.ApplyPenalty(c.Request.Context(), squadID, req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// The penalty debit may be fully clamped away when the judge has no balance
	c.JSON(http.StatusOK, gin.H{"transaction": toTransactionResponse(txn)})
}

// parsePagination extracts limit and offset query parameters
func parsePagination(c *gin.Context) (int, uint64, error) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		limit = parsed
	}

	var offset uint64
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, 0, err
		}
		offset = parsed
	}

	return limit, offset, nil
}
