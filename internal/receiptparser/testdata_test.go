package receiptparser

const sampleReceipt = `ALBERT HEIJN
Kruisstraat 12
1177
OMSCHRIJVING AANTAL PRIJS BEDRAG
BONUSKAART xx1234
AIRMILES NR. xx5678
0.962KG TROSTOMAAT 2,38 2,29
2 LEFFE BLOND 1,11 2,22 B
1 AH HV MELK 1,19
1 PAPRIKA GEEL 1,29 B
+STATIEGELD 0,30
1 RED BULL 1,45
onleesbare regel
SUBTOTAAL 8,74
BONUS AH HV MELK -0,20
UW VOORDEEL 0,20
TOTAAL 8,54
BETAALD MET PINNEN
3 NA STOP 1,00 3,00
14:26 20-12-2025
`
