// Package export renders a stored output quotation as an xlsx workbook. It
// consumes the computed record read-only and never re-derives any amount.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ccam-ts/pricing-api/models"
)

const sheetName = "Quotation"

// Maintenance-fee wording on the license section differs per deployment type.
const (
	maintenanceDetail = "- Bảo trì hệ thống phần mềm: cập nhật các bản vá lỗi, nâng cấp các phiên bản về firmware mới nếu có để đảm bảo hệ thống hoạt động ổn định.\n" +
		"- Hỗ trợ kỹ thuật từ xa trong các trường hợp xảy ra các vấn đề về vận hành hoặc kỹ thuật của hệ thống.\n" +
		"- Hỗ trợ đào tạo, hướng dẫn lại việc sử dụng phần mềm cho nhân sự mới tiếp nhận hệ thống của phía khách hàng.\n" +
		"- Hỗ trợ backup hoặc khôi phục dữ liệu nếu có yêu cầu."
	installationDetail = "- Cài đặt và cấu hình hệ thống phần mềm.\n- Thiết lập máy chủ hoặc môi trường triển khai.\n- Kiểm tra kết nối và phân quyền người dùng.\n- Đảm bảo hệ thống hoạt động ổn định trước khi bàn giao."
	trainingDetail     = "- Hướng dẫn vận hành và sử dụng hệ thống.\n- Đào tạo nhập liệu, tra cứu và xuất báo cáo.\n- Tổ chức đào tạo trực tuyến hoặc trực tiếp theo yêu cầu khách hàng."
	materialDetail     = "- Bao gồm dây cáp, đầu nối, ống luồn, phụ kiện cố định thiết bị.\n- Nhân công thực hiện lắp đặt thiết bị tại hiện trường.\n- Chi phí phụ thuộc vào địa điểm và khối lượng công việc cụ thể."
)

type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render builds the quotation workbook: info header, section A licenses with
// the deployment-dependent maintenance row, section B devices, section C cost
// servers, section D fixed deployment costs, then the summary block.
func (e *ExcelExporter) Render(out *models.OutputQuotation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	// #,##0
	numStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, numStyle: numStyle, boldStyle: boldStyle}

	w.title("CMC TECHNOLOGY & SOLUTION")
	w.title("BÁO GIÁ DỊCH VỤ")
	now := time.Now()
	w.row("", fmt.Sprintf("Hà Nội, ngày %d, tháng %d, năm %d", now.Day(), int(now.Month()), now.Year()))
	w.title("DỰ ÁN: Triển khai C-Cam cho khách hàng")
	w.row("", fmt.Sprintf("Bên báo giá: C-CAM %s", out.DeploymentType))
	w.blank()
	w.row("", "", "", "", "", "", "", "", "", "", "", "", "", "Đơn vị tính: VNĐ")

	w.header("", "STT", "Mô tả", "Thông số kỹ thuật", "Số lượng", "NCC", "Hình ảnh minh họa",
		"Hãng", "Xuất xứ", "Đơn giá trước VAT", "Khuyến mại", "Thành tiền trước VAT", "VAT", "Thành tiền VAT", "Ghi chú")

	w.blank()
	w.section("A", "Chi Phí License Phần Mềm")
	var licenseAmount float64
	for i, l := range out.Licenses {
		amount := l.UnitPrice * float64(l.Quantity)
		licenseAmount += amount
		w.line("", i+1, l.Name, l.Description, l.Quantity, l.Vendor, "", l.Vendor, l.Origin,
			l.UnitPrice, "", amount, blankIfNil(l.PriceRate), amount, l.Note)
	}
	if out.DeploymentType == models.DeploymentCloud {
		w.line("", len(out.Licenses)+1, "(Miễn phí) Phí bảo trì và nâng cấp hàng năm",
			maintenanceDetail, 1, "CMC TS", "", "CMC TS", "Việt Nam", "", "", "", "", "", "")
	} else {
		maintainFee := licenseAmount * 20 / 100
		w.line("", len(out.Licenses)+1, "(Tùy chọn) Phí bảo trì và nâng cấp hằng năm (tính từ năm thứ 2)",
			maintenanceDetail, 1, "CMC TS", "", "CMC TS", "Việt Nam", maintainFee, "", maintainFee, "", maintainFee, "")
	}

	w.blank()
	w.section("B", "Chi Phí Thiết Bị")
	for i, d := range out.Devices {
		w.line("", i+1, d.Name, d.Description, d.Quantity, d.Vendor, "", d.Vendor, d.Origin,
			d.UnitPrice, "", d.UnitPrice*float64(d.Quantity), blankIfNil(d.PriceRate), d.TotalAmount*float64(d.Quantity), "")
	}

	w.blank()
	w.section("C", "Chi Phí Máy Chủ Và Máy Trạm")
	for i, c := range out.CostServers {
		if c.UnitPrice == 0 || c.TotalAmount == 0 {
			w.row("", fmt.Sprint(i+1), c.Name)
			continue
		}
		w.line("", i+1, c.Name, "", c.Quantity, "", "", "", "",
			c.UnitPrice, "", c.UnitPrice*float64(c.Quantity), blankIfNil(c.PriceRate), c.TotalAmount, "")
	}

	w.blank()
	w.section("D", "Chi Phí Triển Khai")
	w.line("", 1, "Chi phí cài đặt phần mềm", installationDetail, 1, "", "", "", "",
		out.SoftwareInstallationCost, "", out.SoftwareInstallationCost, "", out.SoftwareInstallationCost, "")
	w.line("", 2, "Chi phí đào tạo", trainingDetail, 2, "", "", "", "",
		out.TrainingCost, "", out.TrainingCost, "", out.TrainingCost, "")
	material := materialCell(out.MaterialCosts)
	w.line("", 3, "Chi phí vật tư phụ và nhân công thi công lắp đặt", materialDetail, 1, "", "", "", "",
		material, "", material, "", material, "")

	w.blank()
	w.summary("CHI PHÍ TRIỂN KHAI", out.Summary.DeploymentCost, 12, 14,
		"Chi phí tạm tính, có thể phát sinh thay đổi trong quá trình triển khai")
	w.summary("TỔNG GIÁ TRỊ THÀNH TIỀN CHƯA BAO GỒM VAT", out.Summary.TemporaryTotal, 12, 0, "")
	w.summary("THUẾ VAT 8%", out.Summary.VatPrices, 13, 0, "")
	w.summary("TỔNG GIÁ TRỊ ĐÃ BAO GỒM THUẾ", out.Summary.GrandTotal, 14, 0,
		"Chi phí ước tính, thực tế chênh lệch 10%-20%")

	if w.err != nil {
		return nil, w.err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetWriter appends rows top to bottom, keeping the first error it hits.
type sheetWriter struct {
	f         *excelize.File
	cur       int
	numStyle  int
	boldStyle int
	err       error
}

func (w *sheetWriter) next() int {
	w.cur++
	return w.cur
}

func (w *sheetWriter) setRow(r int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheetName, cell, &values)
}

func (w *sheetWriter) blank() {
	w.next()
}

func (w *sheetWriter) row(values ...any) {
	w.setRow(w.next(), values)
}

func (w *sheetWriter) title(text string) {
	r := w.next()
	w.setRow(r, []any{"", text})
	w.styleRange(r, 2, 2, w.boldStyle)
}

func (w *sheetWriter) header(values ...any) {
	r := w.next()
	w.setRow(r, values)
	w.styleRange(r, 2, 15, w.boldStyle)
}

func (w *sheetWriter) section(letter, label string) {
	r := w.next()
	w.setRow(r, []any{"", letter, label})
	w.styleRange(r, 2, 3, w.boldStyle)
}

// line writes one priced row with the money columns number-formatted.
func (w *sheetWriter) line(values ...any) {
	r := w.next()
	w.setRow(r, values)
	for _, col := range []int{10, 12, 13, 14} {
		w.styleRange(r, col, col, w.numStyle)
	}
}

func (w *sheetWriter) summary(label string, value float64, valueCol, extraCol int, note string) {
	r := w.next()
	values := make([]any, 15)
	for i := range values {
		values[i] = ""
	}
	values[1] = label
	values[valueCol-1] = value
	if extraCol > 0 {
		values[extraCol-1] = value
	}
	if note != "" {
		values[14] = note
	}
	w.setRow(r, values)
	w.styleRange(r, 2, 2, w.boldStyle)
	for _, col := range []int{12, 13, 14} {
		w.styleRange(r, col, col, w.numStyle)
	}
}

func (w *sheetWriter) styleRange(r, fromCol, toCol, style int) {
	if w.err != nil {
		return
	}
	start, err := excelize.CoordinatesToCellName(fromCol, r)
	if err != nil {
		w.err = err
		return
	}
	end, err := excelize.CoordinatesToCellName(toCol, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheetName, start, end, style)
}

func blankIfNil(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func materialCell(m models.MaterialCost) any {
	if m.Manual {
		return models.ManualMaterialCostNote
	}
	return m.Amount
}
