// Package bot exposes the inheritance calculator as a Telegram dialog: the
// same question sequence as the original committee bot (gender, spouse,
// children, parents, siblings, estate, debts), with save / download / ask
// follow-ups on the rendered result.
package bot

import (
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"faraid-agent/service"
)

type Bot struct {
	tb          *tele.Bot
	inheritance *service.InheritanceService
	wasiya      *service.WasiyaService
	ai          *service.AIService
	logger      *zap.Logger

	mu      sync.Mutex
	dialogs map[int64]*dialog
}

func New(
	token string,
	inheritance *service.InheritanceService,
	wasiya *service.WasiyaService,
	ai *service.AIService,
	logger *zap.Logger,
) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		tb:          tb,
		inheritance: inheritance,
		wasiya:      wasiya,
		ai:          ai,
		logger:      logger,
		dialogs:     make(map[int64]*dialog),
	}
	b.register()
	return b, nil
}

// Start begins long polling. Blocks until Stop is called.
func (b *Bot) Start() {
	b.tb.Start()
}

func (b *Bot) Stop() {
	b.tb.Stop()
}

func (b *Bot) register() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/faraid", b.handleCalcStart)
	b.tb.Handle("/wasiya", b.handleWasiyaStart)
	b.tb.Handle("/cancel", b.handleCancel)
	b.tb.Handle(tele.OnText, b.handleText)

	handle := func(btn tele.Btn, fn tele.HandlerFunc) {
		b.tb.Handle(&btn, fn)
	}

	handle(btnCalc, b.handleCalcStart)
	handle(btnWasiya, b.handleWasiyaStart)
	handle(btnCancel, b.handleCancel)

	handle(btnNonMuslimYes, b.nonMuslimSelected("yes"))
	handle(btnNonMuslimNo, b.nonMuslimSelected("no"))
	handle(btnNonMuslimUnknown, b.nonMuslimSelected("unknown"))

	handle(btnGenderMale, b.genderSelected(true))
	handle(btnGenderFemale, b.genderSelected(false))
	handle(btnSpouseYes, b.spouseSelected(true))
	handle(btnSpouseNone, b.spouseSelected(false))

	handle(btnFatherYes, b.fatherSelected(true))
	handle(btnFatherNo, b.fatherSelected(false))
	handle(btnMotherYes, b.motherSelected(true))
	handle(btnMotherNo, b.motherSelected(false))

	handle(btnSaveCalc, b.handleSaveCalc)
	handle(btnDocShares, b.handleDocShares)
	handle(btnCalcAsk, b.handleCalcAsk)
	handle(btnCalcAgain, b.handleCalcStart)
}

func (b *Bot) handleStart(c tele.Context) error {
	b.clearDialog(c.Sender().ID)
	return c.Send(
		"Ассаляму алейкум! Я помогу рассчитать доли наследства по Шариату "+
			"и проверить васият (завещание посторонним).",
		mainMenu())
}

func (b *Bot) handleCancel(c tele.Context) error {
	b.clearDialog(c.Sender().ID)
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return c.Send("Действие отменено.", mainMenu())
}
