package services

type seedStudent struct {
	FirstName           string
	LastName            string
	DateOfBirth         string
	Instrument          string
	SecondaryInstrument string
	Level               string
	Teacher             string
	Phone               string
	Email               string
	Slots               []TimeSlot
}

var seedStudents = []seedStudent{
	{"Marie", "Dubois", "2008-03-15", "Violon", "Alto", "3CD1", "J. MEUNIER", "06 12 34 56 78", "marie.dubois@example.com",
		[]TimeSlot{{1, "14:00", "15:00"}, {3, "16:00", "17:00"}}},
	{"Lucas", "Martin", "2007-06-22", "Alto", "", "3CD2", "F. VOGHT", "06 23 45 67 89", "lucas.martin@example.com",
		[]TimeSlot{{2, "15:00", "16:00"}, {4, "17:00", "18:00"}}},
	{"Emma", "Bernard", "2009-11-30", "Clarinette", "", "PPES1", "J. MEUNIER", "06 34 56 78 90", "emma.bernard@example.com",
		[]TimeSlot{{1, "16:00", "17:00"}, {5, "14:00", "15:00"}}},
	{"Thomas", "Petit", "2006-09-08", "Violon", "Clarinette", "3CR1", "F. VOGHT", "06 45 67 89 01", "thomas.petit@example.com",
		[]TimeSlot{{2, "14:00", "15:00"}, {4, "15:00", "16:00"}}},
	{"Léa", "Roux", "2008-01-25", "Alto", "", "PPES2", "J. MEUNIER", "06 56 78 90 12", "lea.roux@example.com",
		[]TimeSlot{{3, "14:00", "15:00"}, {5, "16:00", "17:00"}}},
	{"Antoine", "Moreau", "2007-04-12", "Violon", "Piano", "3CD3", "F. VOGHT", "06 78 90 12 34", "antoine.moreau@example.com",
		[]TimeSlot{{1, "15:00", "16:00"}, {4, "14:00", "15:00"}}},
	{"Sarah", "Lambert", "2009-07-18", "Clarinette", "", "3CD2", "J. MEUNIER", "06 89 01 23 45", "sarah.lambert@example.com",
		[]TimeSlot{{2, "16:00", "17:00"}, {5, "15:00", "16:00"}}},
	{"Hugo", "Girard", "2006-11-30", "Violoncelle", "", "PPES1", "F. VOGHT", "06 90 12 34 56", "hugo.girard@example.com",
		[]TimeSlot{{3, "15:00", "16:00"}, {5, "14:00", "15:00"}}},
	{"Camille", "Leroy", "2008-09-22", "Piano", "Violon", "3CR2", "J. MEUNIER", "06 01 23 45 67", "camille.leroy@example.com",
		[]TimeSlot{{2, "14:00", "15:00"}, {4, "16:00", "17:00"}}},
	{"Louis", "Fournier", "2007-03-15", "Hautbois", "", "3CD4", "F. VOGHT", "06 12 34 56 78", "louis.fournier@example.com",
		[]TimeSlot{{1, "16:00", "17:00"}, {3, "14:00", "15:00"}}},
	{"Chloé", "Dupuis", "2009-01-08", "Violon", "Alto", "3CR1", "J. MEUNIER", "06 23 45 67 89", "chloe.dupuis@example.com",
		[]TimeSlot{{2, "15:00", "16:00"}, {4, "15:00", "16:00"}}},
	{"Gabriel", "Mercier", "2006-06-25", "Alto", "", "PPES3", "F. VOGHT", "06 34 56 78 90", "gabriel.mercier@example.com",
		[]TimeSlot{{1, "14:00", "15:00"}, {3, "16:00", "17:00"}}},
	{"Inès", "Bonnet", "2008-12-03", "Clarinette", "Piano", "3CD1", "J. MEUNIER", "06 45 67 89 01", "ines.bonnet@example.com",
		[]TimeSlot{{2, "16:00", "17:00"}, {5, "14:00", "15:00"}}},
	{"Nathan", "Rousseau", "2007-08-17", "Violoncelle", "", "3CR3", "F. VOGHT", "06 56 78 90 12", "nathan.rousseau@example.com",
		[]TimeSlot{{1, "15:00", "16:00"}, {4, "14:00", "15:00"}}},
	{"Manon", "Laurent", "2009-05-29", "Piano", "", "3CD2", "J. MEUNIER", "06 67 89 01 23", "manon.laurent@example.com",
		[]TimeSlot{{2, "14:00", "15:00"}, {4, "16:00", "17:00"}}},
	{"Arthur", "Simon", "2006-10-14", "Hautbois", "Clarinette", "PPES2", "F. VOGHT", "06 78 90 12 34", "arthur.simon@example.com",
		[]TimeSlot{{3, "15:00", "16:00"}, {5, "15:00", "16:00"}}},
	{"Zoé", "Michel", "2008-02-11", "Violon", "", "3CD3", "J. MEUNIER", "06 89 01 23 45", "zoe.michel@example.com",
		[]TimeSlot{{1, "16:00", "17:00"}, {4, "15:00", "16:00"}}},
	{"Maxime", "Lefebvre", "2007-12-20", "Alto", "Violon", "3CR2", "F. VOGHT", "06 90 12 34 56", "maxime.lefebvre@example.com",
		[]TimeSlot{{2, "15:00", "16:00"}, {5, "16:00", "17:00"}}},
	{"Alice", "Morel", "2009-03-07", "Clarinette", "", "PPES1", "J. MEUNIER", "06 01 23 45 67", "alice.morel@example.com",
		[]TimeSlot{{1, "14:00", "15:00"}, {3, "15:00", "16:00"}}},
	{"Paul", "Bertrand", "2006-07-31", "Violoncelle", "", "3CD4", "F. VOGHT", "06 12 34 56 78", "paul.bertrand@example.com",
		[]TimeSlot{{2, "16:00", "17:00"}, {4, "14:00", "15:00"}}},
}
