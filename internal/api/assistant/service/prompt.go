package assistantService

import (
	"fmt"
	"strings"
	"time"

	"CatatUang/internal/entity"
)

const maxMessageLen = 500

var categoryList = strings.Join([]string{
	string(entity.CategoryFoodDrink),
	string(entity.CategoryTransport),
	string(entity.CategoryBills),
	string(entity.CategoryEntertainment),
	string(entity.CategoryShopping),
	string(entity.CategoryHealth),
	string(entity.CategoryEducation),
	string(entity.CategoryOther),
}, ", ")

func trimMessage(message string) string {
	message = strings.TrimSpace(message)
	if len(message) > maxMessageLen {
		message = message[:maxMessageLen]
	}
	return message
}

// buildExtractionPrompt produces the system prompt for the extraction model.
// The output contract is strict: a bare JSON array, nothing around it.
func buildExtractionPrompt(now time.Time) string {
	return fmt.Sprintf(`Kamu adalah asisten pencatat keuangan. Ekstrak transaksi dari pesan pengguna dalam Bahasa Indonesia.

Balas HANYA dengan JSON array, tanpa penjelasan, tanpa markdown, tanpa teks lain. Setiap elemen berbentuk:
{"description": string, "amount": number, "quantity": number, "category": string, "type": string, "created_at": string}

Aturan:
1. "amount" adalah TOTAL harga, bukan harga satuan. "2 kopi 10 ribu" berarti amount 10000, bukan 5000.
2. "quantity" diisi jika pengguna menyebut jumlah barang, selain itu 1.
3. "category" wajib salah satu dari: %s. Jika ragu gunakan "Lainnya".
4. "type" adalah "income" untuk pemasukan (gaji, bonus, jual, transfer masuk) dan "expense" untuk pengeluaran. Jika ragu gunakan "expense".
5. "created_at" format RFC3339. Waktu sekarang: %s (Asia/Jakarta). "pagi" berarti jam 05-10, "siang" 11-14, "sore" 15-18, "malam" 19-23. Jika pengguna tidak menyebut waktu, pakai waktu sekarang.
6. Pesan dengan beberapa transaksi (dipisah koma atau "dan") dipecah menjadi beberapa elemen array.
7. Angka dengan kata skala: "10rb"/"10 ribu" = 10000, "1,5jt"/"1.5 juta" = 1500000, "20k" = 20000.
8. Jika tidak ada transaksi sama sekali, balas [].`,
		categoryList,
		now.Format(time.RFC3339),
	)
}

// buildReceiptPrompt drives receipt OCR through the vision model using the
// same output contract as text extraction.
func buildReceiptPrompt(now time.Time) string {
	return fmt.Sprintf(`Baca struk belanja pada gambar ini dan ekstrak transaksinya.

Balas HANYA dengan JSON array, tanpa penjelasan, tanpa markdown. Setiap elemen berbentuk:
{"description": string, "amount": number, "quantity": number, "category": string, "type": string, "created_at": string}

Aturan:
1. "amount" adalah TOTAL harga baris itu (harga satuan dikali jumlah).
2. "category" wajib salah satu dari: %s. Jika ragu gunakan "Lainnya".
3. "type" selalu "expense" untuk struk belanja.
4. "created_at" format RFC3339, ambil dari tanggal struk jika terbaca. Waktu sekarang: %s (Asia/Jakarta).
5. Abaikan baris subtotal, pajak, dan kembalian. Jika total akhir lebih masuk akal daripada baris per item, catat satu transaksi dengan total akhir.
6. Jika struk tidak terbaca, balas [].`,
		categoryList,
		now.Format(time.RFC3339),
	)
}

func buildReportPrompt(query string, label string, rows []entity.Transaction, now time.Time) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "- %s | %s | %.0f | %s | %s\n",
			row.CreatedAt.Format("2006-01-02"), row.Description, row.Amount, row.Type, row.Category)
	}

	return fmt.Sprintf(`Kamu adalah asisten keuangan. Jawab pertanyaan pengguna berdasarkan data transaksi berikut (periode %s, waktu sekarang %s):

%s
Pertanyaan: %s

Jawab dalam Bahasa Indonesia, singkat dan jelas. Gunakan teks biasa saja: tanpa markdown, tanpa bullet, tanpa bold, tanpa penomoran. Sebutkan angka dalam Rupiah.`,
		label,
		now.Format(time.RFC3339),
		b.String(),
		query,
	)
}
