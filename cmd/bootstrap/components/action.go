package components

import (
	"log/slog"

	"commerce-actions/internal/action"
	"commerce-actions/internal/pkg/config"
	"commerce-actions/internal/usecase"
	"commerce-actions/internal/usecase/commands"
	"commerce-actions/internal/usecase/queries"

	"go.uber.org/fx"
)

var ActionModule = fx.Module("action",
	fx.Provide(
		NewActionRegistry,
		NewActionExecutor,
	),
)

type ActionUseCases struct {
	fx.In

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

func NewActionRegistry(in ActionUseCases, logger *slog.Logger) (*action.Registry, error) {
	reg := action.NewRegistry()
	err := usecase.RegisterActions(reg, usecase.Actions{
		Scheduling:      in.Scheduling,
		Discounts:       in.Discounts,
		CRM:             in.CRM,
		Carts:           in.Carts,
		Appointments:    in.Appointments,
		Instructions:    in.Instructions,
		Promotions:      in.Promotions,
		CartViews:       in.CartViews,
		Inventory:       in.Inventory,
		Recommendations: in.Recommendations,
		AvailableTimes:  in.AvailableTimes,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Action catalog registered", slog.Int("actions", len(reg.Specs())))
	return reg, nil
}

func NewActionExecutor(reg *action.Registry, cfg config.Config, logger *slog.Logger) action.Executor {
	return action.NewExecutor(reg, logger, cfg.Action.DefaultTimeout)
}
