package bot

import tele "gopkg.in/telebot.v3"

// Inline buttons, registered once by unique id.
var (
	btnCalc   = tele.Btn{Text: "📿 Расчёт наследства", Unique: "inherit_calc"}
	btnWasiya = tele.Btn{Text: "🪙 Васият (лимит 1/3)", Unique: "inherit_wasiya"}
	btnCancel = tele.Btn{Text: "❌ Отмена", Unique: "inherit_cancel"}

	btnNonMuslimYes     = tele.Btn{Text: "Да", Unique: "inherit_nonmuslim_yes"}
	btnNonMuslimNo      = tele.Btn{Text: "Нет", Unique: "inherit_nonmuslim_no"}
	btnNonMuslimUnknown = tele.Btn{Text: "Не знаю", Unique: "inherit_nonmuslim_unknown"}

	btnGenderMale   = tele.Btn{Text: "Мужчина", Unique: "inherit_gender_male"}
	btnGenderFemale = tele.Btn{Text: "Женщина", Unique: "inherit_gender_female"}

	btnSpouseYes  = tele.Btn{Text: "Да", Unique: "inherit_spouse_yes"}
	btnSpouseNone = tele.Btn{Text: "Нет", Unique: "inherit_spouse_none"}

	btnFatherYes = tele.Btn{Text: "Да", Unique: "inherit_father_yes"}
	btnFatherNo  = tele.Btn{Text: "Нет", Unique: "inherit_father_no"}
	btnMotherYes = tele.Btn{Text: "Да", Unique: "inherit_mother_yes"}
	btnMotherNo  = tele.Btn{Text: "Нет", Unique: "inherit_mother_no"}

	btnSaveCalc  = tele.Btn{Text: "💾 Сохранить расчёт", Unique: "inherit_save_calc"}
	btnDocShares = tele.Btn{Text: "📄 Скачать файлом", Unique: "inherit_doc_shares"}
	btnCalcAsk   = tele.Btn{Text: "🕌 Спросить учёного", Unique: "inherit_calc_ask"}
	btnCalcAgain = tele.Btn{Text: "🔁 Новый расчёт", Unique: "inherit_again"}
)

func mainMenu() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(btnCalc),
		m.Row(btnWasiya),
	)
	return m
}

func rows(buttons ...tele.Btn) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	var r []tele.Row
	for _, btn := range buttons {
		r = append(r, m.Row(btn))
	}
	m.Inline(r...)
	return m
}

func choiceKeyboard(options ...tele.Btn) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	m.Inline(
		m.Row(options...),
		m.Row(btnCancel),
	)
	return m
}

func actionKeyboard() *tele.ReplyMarkup {
	return rows(btnSaveCalc, btnDocShares, btnCalcAsk, btnCalcAgain)
}
