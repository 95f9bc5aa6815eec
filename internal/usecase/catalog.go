package usecase

import (
	"context"

	"commerce-actions/internal/action"
	"commerce-actions/internal/pkg/errs"
	"commerce-actions/internal/pkg/patch"
	"commerce-actions/internal/usecase/commands"
	"commerce-actions/internal/usecase/queries"
)

// Actions bundles the use cases the catalog exposes.
type Actions struct {
	Scheduling      commands.SchedulingCommands
	Discounts       commands.DiscountCommands
	CRM             commands.CRMCommands
	Carts           commands.CartCommands
	Appointments    commands.AppointmentCommands
	Instructions    commands.InstructionCommands
	Promotions      commands.PromotionCommands
	CartViews       queries.CartQueries
	Inventory       queries.InventoryQueries
	Recommendations queries.RecommendationQueries
	AvailableTimes  queries.AppointmentQueries
}

type ModifyCartResponse struct {
	Status       string           `json:"status"`
	Message      string           `json:"message"`
	ItemsAdded   bool             `json:"items_added"`
	ItemsRemoved bool             `json:"items_removed"`
	Cart         queries.CartView `json:"cart"`
}

// RegisterActions adds every action of the catalog to reg, in the order
// they are listed to callers. The executor binds each handler's params
// before dispatch.
func RegisterActions(reg *action.Registry, a Actions) error {
	steps := []func() error{
		func() error { return action.RegisterTyped(reg, scheduleCallSpec, a.scheduleCall) },
		func() error { return action.RegisterTyped(reg, approveDiscountSpec, a.approveDiscount) },
		func() error { return action.RegisterTyped(reg, requestApprovalSpec, a.requestApproval) },
		func() error { return action.RegisterTyped(reg, updateCRMRecordSpec, a.updateCRMRecord) },
		func() error { return action.RegisterTyped(reg, accessCartSpec, a.accessCart) },
		func() error { return action.RegisterTyped(reg, modifyCartSpec, a.modifyCart) },
		func() error { return action.RegisterTyped(reg, recommendationsSpec, a.getRecommendations) },
		func() error { return action.RegisterTyped(reg, availabilitySpec, a.checkAvailability) },
		func() error { return action.RegisterTyped(reg, scheduleAppointmentSpec, a.scheduleAppointment) },
		func() error { return action.RegisterTyped(reg, availableTimesSpec, a.listAvailableTimes) },
		func() error { return action.RegisterTyped(reg, sendInstructionsSpec, a.sendInstructions) },
		func() error { return action.RegisterTyped(reg, promotionCodeSpec, a.generatePromotionCode) },
	}

	for _, register := range steps {
		if err := register(); err != nil {
			return errs.Wrap(err, "register action catalog")
		}
	}
	return nil
}

func (a Actions) scheduleCall(ctx context.Context, p scheduleCallParams) (any, error) {
	req, err := copyInto[commands.ScheduleCallRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Scheduling.ScheduleCall(ctx, req)
}

func (a Actions) approveDiscount(ctx context.Context, p discountParams) (any, error) {
	req, err := copyInto[commands.DiscountRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Discounts.ApproveDiscount(ctx, req)
}

func (a Actions) requestApproval(ctx context.Context, p discountParams) (any, error) {
	req, err := copyInto[commands.DiscountRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Discounts.RequestApproval(ctx, req)
}

func (a Actions) updateCRMRecord(ctx context.Context, p crmParams) (any, error) {
	return a.CRM.UpdateRecord(ctx, p.CustomerID, p.Details)
}

func (a Actions) accessCart(ctx context.Context, p customerParams) (any, error) {
	return a.CartViews.AccessCart(ctx, p.CustomerID)
}

func (a Actions) modifyCart(ctx context.Context, p modifyCartParams) (any, error) {
	req, err := copyInto[commands.ModifyCartRequest](&p)
	if err != nil {
		return nil, err
	}
	res, err := a.Carts.ModifyCart(ctx, req)
	if err != nil {
		return nil, err
	}
	view, err := queries.NewCartView(res.Cart)
	if err != nil {
		return nil, err
	}
	return &ModifyCartResponse{
		Status:       res.Status,
		Message:      res.Message,
		ItemsAdded:   res.ItemsAdded,
		ItemsRemoved: res.ItemsRemoved,
		Cart:         view,
	}, nil
}

func (a Actions) getRecommendations(ctx context.Context, p recommendationParams) (any, error) {
	customerID := patch.Coalesce(patch.TrimmedOrNil(p.CustomerID), "")
	return a.Recommendations.Recommend(ctx, p.Category, customerID)
}

func (a Actions) checkAvailability(ctx context.Context, p availabilityParams) (any, error) {
	return a.Inventory.CheckAvailability(ctx, p.ProductID, p.StoreID)
}

func (a Actions) scheduleAppointment(ctx context.Context, p appointmentParams) (any, error) {
	req, err := copyInto[commands.ScheduleAppointmentRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Appointments.ScheduleAppointment(ctx, req)
}

func (a Actions) listAvailableTimes(ctx context.Context, p availableTimesParams) (any, error) {
	return a.AvailableTimes.ListAvailableTimes(ctx, p.Date)
}

func (a Actions) sendInstructions(ctx context.Context, p instructionsParams) (any, error) {
	req, err := copyInto[commands.SendInstructionsRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Instructions.SendInstructions(ctx, req)
}

func (a Actions) generatePromotionCode(ctx context.Context, p promotionParams) (any, error) {
	req, err := copyInto[commands.GeneratePromotionRequest](&p)
	if err != nil {
		return nil, err
	}
	return a.Promotions.GeneratePromotionCode(ctx, req)
}
