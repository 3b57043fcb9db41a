package model

// CalculationMethod is an Aladhan calculation-method entry with its Turkish
// display name. The id is opaque to this service and passed straight
// through to the provider.
type CalculationMethod struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameTr string `json:"name_tr"`
}

// CalculationMethods lists the methods the app exposes. Note there is no
// id 6; the provider skips it too.
var CalculationMethods = []CalculationMethod{
	{ID: 0, Name: "Shia Ithna-Ashari", NameTr: "Şii İsna Aşeri"},
	{ID: 1, Name: "University of Islamic Sciences, Karachi", NameTr: "Karachi Üniversitesi"},
	{ID: 2, Name: "Islamic Society of North America", NameTr: "ISNA"},
	{ID: 3, Name: "Muslim World League", NameTr: "Müslüman Dünya Birliği"},
	{ID: 4, Name: "Umm Al-Qura University, Makkah", NameTr: "Ümmül Kura"},
	{ID: 5, Name: "Egyptian General Authority of Survey", NameTr: "Mısır"},
	{ID: 7, Name: "Institute of Geophysics, University of Tehran", NameTr: "Tahran"},
	{ID: 8, Name: "Gulf Region", NameTr: "Körfez Bölgesi"},
	{ID: 9, Name: "Kuwait", NameTr: "Kuveyt"},
	{ID: 10, Name: "Qatar", NameTr: "Katar"},
	{ID: 11, Name: "Majlis Ugama Islam Singapura", NameTr: "Singapur"},
	{ID: 12, Name: "Union Organization Islamic de France", NameTr: "Fransa"},
	{ID: 13, Name: "Diyanet İşleri Başkanlığı, Turkey", NameTr: "Diyanet İşleri Başkanlığı"},
	{ID: 14, Name: "Spiritual Administration of Muslims of Russia", NameTr: "Rusya"},
}
