package model

type Account struct {
	Number     int64
	HolderName string
	Balance    int64
}
