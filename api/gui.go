package api

type Gui interface {
	Run()
}
