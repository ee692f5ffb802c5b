package bot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"faraid-agent/domain"
	"faraid-agent/faraid"
)

type step int

const (
	stepNone step = iota
	stepSons
	stepDaughters
	stepBrothers
	stepSisters
	stepEstate
	stepDebts
	stepWasiyaEstate
	stepWasiyaAmount
)

// dialog is the per-user conversation state. The button-driven stages write
// directly into req; text stages are sequenced by step.
type dialog struct {
	step step
	req  domain.CalculationRequest

	wasiyaEstate   decimal.Decimal
	wasiyaCurrency string
}

func (b *Bot) dialogFor(userID int64) *dialog {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.dialogs[userID]
	if !ok {
		d = &dialog{}
		b.dialogs[userID] = d
	}
	return d
}

func (b *Bot) clearDialog(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.dialogs, userID)
}

const cancelHint = "\n\nДля отмены отправьте /cancel."

// ── calculation flow ─────────────────────────────────────────────

func (b *Bot) handleCalcStart(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	userID := c.Sender().ID
	b.clearDialog(userID)
	d := b.dialogFor(userID)
	d.req.UserID = userID
	return c.Send(
		"Есть ли среди наследников не мусульмане?",
		choiceKeyboard(btnNonMuslimYes, btnNonMuslimNo, btnNonMuslimUnknown))
}

func (b *Bot) nonMuslimSelected(answer string) tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond()
		d := b.dialogFor(c.Sender().ID)
		d.req.NonMuslimHeirs = answer
		return c.Send(
			"Кем был умерший?",
			choiceKeyboard(btnGenderMale, btnGenderFemale))
	}
}

func (b *Bot) genderSelected(male bool) tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond()
		d := b.dialogFor(c.Sender().ID)
		question := "Осталась ли жена?"
		if male {
			d.req.Input.DeceasedGender = domain.GenderMale
		} else {
			d.req.Input.DeceasedGender = domain.GenderFemale
			question = "Остался ли муж?"
		}
		return c.Send(question, choiceKeyboard(btnSpouseYes, btnSpouseNone))
	}
}

func (b *Bot) spouseSelected(present bool) tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond()
		d := b.dialogFor(c.Sender().ID)
		switch {
		case !present:
			d.req.Input.Spouse = domain.SpouseNone
		case d.req.Input.DeceasedGender == domain.GenderMale:
			d.req.Input.Spouse = domain.SpouseWife
		default:
			d.req.Input.Spouse = domain.SpouseHusband
		}
		d.step = stepSons
		return c.Send("Сколько сыновей? Введите число от 0 до 20." + cancelHint)
	}
}

func (b *Bot) fatherSelected(alive bool) tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond()
		d := b.dialogFor(c.Sender().ID)
		d.req.Input.FatherAlive = alive
		return c.Send("Жива ли мать умершего?", choiceKeyboard(btnMotherYes, btnMotherNo))
	}
}

func (b *Bot) motherSelected(alive bool) tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond()
		d := b.dialogFor(c.Sender().ID)
		d.req.Input.MotherAlive = alive
		d.step = stepBrothers
		return c.Send("Сколько родных братьев? Введите число от 0 до 20." + cancelHint)
	}
}

// handleText routes free-text replies by the current dialog step.
func (b *Bot) handleText(c tele.Context) error {
	d := b.dialogFor(c.Sender().ID)

	switch d.step {
	case stepSons, stepDaughters, stepBrothers, stepSisters:
		return b.handleCountStep(c, d)
	case stepEstate:
		return b.handleEstateStep(c, d)
	case stepDebts:
		return b.handleDebtsStep(c, d)
	case stepWasiyaEstate:
		return b.handleWasiyaEstateStep(c, d)
	case stepWasiyaAmount:
		return b.handleWasiyaAmountStep(c, d)
	default:
		return c.Send("Выберите действие в меню.", mainMenu())
	}
}

func (b *Bot) handleCountStep(c tele.Context, d *dialog) error {
	count, ok := faraid.ParseCount(c.Text(), domain.MaxRelatives)
	if !ok {
		return c.Send(fmt.Sprintf("Введите число от 0 до %d.", domain.MaxRelatives))
	}

	switch d.step {
	case stepSons:
		d.req.Input.Sons = count
		d.step = stepDaughters
		return c.Send("Сколько дочерей? Введите число от 0 до 20." + cancelHint)
	case stepDaughters:
		d.req.Input.Daughters = count
		d.step = stepNone
		return c.Send("Жив ли отец умершего?", choiceKeyboard(btnFatherYes, btnFatherNo))
	case stepBrothers:
		d.req.Input.Brothers = count
		d.step = stepSisters
		return c.Send("Сколько родных сестёр? Введите число от 0 до 20." + cancelHint)
	default: // stepSisters
		d.req.Input.Sisters = count
		d.step = stepEstate
		return c.Send("💰 Введите сумму имущества, например: `500000 ₽`."+cancelHint,
			tele.ModeMarkdown)
	}
}

func (b *Bot) handleEstateStep(c tele.Context, d *dialog) error {
	amount, ok := faraid.ParseMoney(c.Text())
	if !ok {
		return c.Send("Введите сумму числом, например: `500000 ₽`.", tele.ModeMarkdown)
	}
	d.req.EstateAmount = amount
	d.req.Currency = faraid.CurrencyHint(c.Text())
	d.step = stepDebts
	return c.Send("📌 Долги умершего: введите сумму (0 — если нет/неизвестно)." + cancelHint)
}

func (b *Bot) handleDebtsStep(c tele.Context, d *dialog) error {
	debts, ok := faraid.ParseMoneyAllowZero(c.Text())
	if !ok {
		return c.Send("Введите сумму долга числом, например: `0` или `150000`.", tele.ModeMarkdown)
	}
	d.req.DebtsAmount = debts

	userID := c.Sender().ID
	result, err := b.inheritance.Calculate(d.req)
	b.clearDialog(userID)
	if err != nil {
		b.logger.Warn("inheritance calculation rejected",
			zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(
			"После вычета долгов наследственная масса получилась ≤ 0. "+
				"Уточните суммы или обратитесь к учёному.",
			mainMenu())
	}

	return c.Send(result.Text, actionKeyboard())
}

// ── result follow-ups ────────────────────────────────────────────

func (b *Bot) handleSaveCalc(c tele.Context) error {
	userID := c.Sender().ID
	if _, err := b.inheritance.SaveLastCalculation(userID); err != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Нет расчёта для сохранения. Сначала выполните расчёт.",
			ShowAlert: true,
		})
	}
	return c.Respond(&tele.CallbackResponse{Text: "Расчёт сохранён."})
}

func (b *Bot) handleDocShares(c tele.Context) error {
	userID := c.Sender().ID
	text, ok := b.inheritance.LastCalculation(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Сначала выполните расчёт наследства.",
			ShowAlert: true,
		})
	}
	_ = c.Respond()
	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader([]byte(text))),
		FileName: fmt.Sprintf("inheritance_shares_%s.txt", time.Now().Format("2006-01-02")),
		Caption:  "📄 Список наследников и долей (черновик)",
	}
	return c.Send(doc)
}

func (b *Bot) handleCalcAsk(c tele.Context) error {
	userID := c.Sender().ID
	text, ok := b.inheritance.LastCalculation(userID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Сначала выполните расчёт наследства.",
			ShowAlert: true,
		})
	}
	_ = c.Respond()
	question := "Прошу проверить расчёт наследства и указать, есть ли ошибки/исключения.\n\n" + text
	answer := b.ai.AskScholar(question)
	return c.Send(answer, mainMenu())
}

// ── wasiya flow ──────────────────────────────────────────────────

func (b *Bot) handleWasiyaStart(c tele.Context) error {
	if c.Callback() != nil {
		_ = c.Respond()
	}
	userID := c.Sender().ID
	b.clearDialog(userID)
	d := b.dialogFor(userID)
	d.step = stepWasiyaEstate
	return c.Send("🪙 Васият: введите общую сумму имущества (для проверки лимита 1/3)." + cancelHint)
}

func (b *Bot) handleWasiyaEstateStep(c tele.Context, d *dialog) error {
	amount, ok := faraid.ParseMoney(c.Text())
	if !ok {
		return c.Send("Введите сумму числом, например: `500000 ₽`.", tele.ModeMarkdown)
	}
	d.wasiyaEstate = amount
	d.wasiyaCurrency = faraid.CurrencyHint(c.Text())
	d.step = stepWasiyaAmount
	return c.Send("Введите сумму, которую хотите завещать посторонним (васият)." + cancelHint)
}

func (b *Bot) handleWasiyaAmountStep(c tele.Context, d *dialog) error {
	amount, ok := faraid.ParseMoneyAllowZero(c.Text())
	if !ok {
		return c.Send("Введите сумму числом, например: `0` или `100000`.", tele.ModeMarkdown)
	}

	result, err := b.wasiya.Check(d.wasiyaEstate, amount, d.wasiyaCurrency)
	b.clearDialog(c.Sender().ID)
	if err != nil {
		return c.Send("Не удалось определить сумму имущества. Попробуйте снова.", mainMenu())
	}
	if !result.Allowed {
		return c.Send(result.Text, rows(btnWasiya))
	}
	return c.Send(result.Text, mainMenu())
}
