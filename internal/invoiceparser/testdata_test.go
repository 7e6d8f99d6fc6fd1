package invoiceparser

const sampleInvoice = `Albert Heijn Online
Factuur
Factuurnummer 2025-0012345
Debiteurnummer 998877
Datum 12 januari 2025
Omschrijving Aantal Btw Excl. btw Btw Incl. btw
AH Halfvolle melk 2 9% 2,00 0,18 2,18
Chips Tortilla BONUS 1 9% 1,65 0,15 1,80
Leffe Blond 6x30cl 1 21% 7,44 1,56 9,00
Zaanse Hoeve kaas 48+ plakken 1 9% 3,21 0,28 3,49
Crème fraîche 1 9% 1,10 0,10 1,20
AH Halfvolle melk 2 9% 2,00 0,18 2,18
Chips Tortilla 1 9% 1,65 0,15 1,80
Statiegeld 1 Geen 0,15 0,00 0,15
Bezorgkosten 1 21% 3,31 0,69 4,00
Pagina 2 van 2
ah 1 9% 1,00 0,09 1,09
Totaal inclusief btw 21,82
Uw voordeel 0,45
`
