package http

import (
	"net/http"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
	"github.com/kintai-hq/kintai-backend-go/internal/handler/http/response"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
	workruleService "github.com/kintai-hq/kintai-backend-go/internal/service/workrule"
)

type WorkRuleHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
}

type workRuleHandlerImpl struct {
	resolver *workruleService.Resolver
}

func NewWorkRuleHandler(resolver *workruleService.Resolver) WorkRuleHandler {
	return &workRuleHandlerImpl{
		resolver: resolver,
	}
}

// Resolve handles GET /rules/resolve?date=
// It reports which template and workplace would govern the date for the
// authenticated user, useful for checking a rule setup before reports run.
func (h *workRuleHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := workrule.ResolveRuleRequest{Date: r.URL.Query().Get("date")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	date, _ := validator.IsValidDate(req.Date)

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	template, err := h.resolver.Resolve(ctx, userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	workplace, err := h.resolver.ResolveWorkplace(ctx, userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workrule.ResolveRuleResponse{
		Date:      req.Date,
		Template:  workrule.ToTemplateResponse(template),
		Workplace: workrule.ToWorkplaceResponse(workplace),
	})
}
