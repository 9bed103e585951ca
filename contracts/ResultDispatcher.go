package contracts

type ResultDispatcher interface {
	Notify(sheetId string, webhookUrl string, report *SheetReport)
	Start()
	Close()
}
