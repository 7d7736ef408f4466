package vocab

// offline HSK word lists used when live generation is unavailable
var hskTables = map[int][]word{
	1: {
		{"爱", "ài", "Yêu"},
		{"八", "bā", "Số 8"},
		{"爸爸", "bàba", "Bố"},
		{"杯子", "bēizi", "Cái cốc"},
		{"北京", "Běijīng", "Bắc Kinh"},
		{"本", "běn", "Quyển (lượng từ)"},
		{"不客气", "bú kèqi", "Đừng khách sáo"},
		{"菜", "cài", "Món ăn / Rau"},
		{"茶", "chá", "Trà"},
		{"吃", "chī", "Ăn"},
		{"出租车", "chūzūchē", "Taxi"},
		{"大", "dà", "To, lớn"},
		{"电脑", "diànnǎo", "Máy tính"},
		{"电视", "diànshì", "Tivi"},
		{"高兴", "gāoxìng", "Vui vẻ"},
	},
	2: {
		{"吧", "ba", "Nhé, đi (trợ từ)"},
		{"白", "bái", "Màu trắng"},
		{"百", "bǎi", "Trăm"},
		{"帮助", "bāngzhù", "Giúp đỡ"},
		{"报纸", "bàozhǐ", "Báo giấy"},
		{"比", "bǐ", "So với"},
		{"别", "bié", "Đừng"},
		{"长", "cháng", "Dài"},
		{"唱歌", "chànggē", "Hát"},
		{"穿", "chuān", "Mặc"},
		{"大家", "dàjiā", "Mọi người"},
		{"但是", "dànshì", "Nhưng mà"},
		{"懂", "dǒng", "Hiểu"},
		{"非常", "fēicháng", "Vô cùng"},
		{"红", "hóng", "Màu đỏ"},
	},
	3: {
		{"阿姨", "āyí", "Dì, cô"},
		{"矮", "ǎi", "Thấp"},
		{"爱好", "àihào", "Sở thích"},
		{"安静", "ānjìng", "Yên tĩnh"},
		{"搬", "bān", "Chuyển, dời"},
		{"办法", "bànfǎ", "Biện pháp"},
		{"饱", "bǎo", "No"},
		{"北方", "běifāng", "Miền Bắc"},
		{"必须", "bìxū", "Phải, bắt buộc"},
		{"冰箱", "bīngxiāng", "Tủ lạnh"},
		{"才", "cái", "Mới (vừa mới)"},
		{"草", "cǎo", "Cỏ"},
		{"层", "céng", "Tầng"},
		{"差", "chà", "Kém, thiếu"},
		{"超市", "chāoshì", "Siêu thị"},
	},
	4: {
		{"爱情", "àiqíng", "Tình yêu"},
		{"安排", "ānpái", "Sắp xếp"},
		{"安全", "ānquán", "An toàn"},
		{"暗", "àn", "Tối, ngầm"},
		{"按时", "ànshí", "Đúng giờ"},
		{"按照", "ànzhào", "Dựa theo"},
		{"包括", "bāokuò", "Bao gồm"},
		{"保护", "bǎohù", "Bảo vệ"},
		{"抱", "bào", "Ôm"},
		{"报名", "bàomíng", "Báo danh"},
		{"笨", "bèn", "Ngốc"},
		{"本来", "běnlái", "Vốn dĩ"},
		{"毕业", "bìyè", "Tốt nghiệp"},
		{"标准", "biāozhǔn", "Tiêu chuẩn"},
		{"表扬", "biǎoyáng", "Tuyên dương"},
	},
	5: {
		{"爱惜", "àixī", "Trân trọng, yêu quý"},
		{"爱心", "àixīn", "Lòng yêu thương"},
		{"安慰", "ānwèi", "An ủi"},
		{"安装", "ānzhuāng", "Lắp đặt"},
		{"岸", "àn", "Bờ (sông, biển)"},
		{"把握", "bǎwò", "Nắm bắt"},
		{"摆", "bǎi", "Bày biện"},
		{"班主任", "bānzhǔrèn", "Giáo viên chủ nhiệm"},
		{"办理", "bànlǐ", "Xử lý"},
		{"棒", "bàng", "Giỏi, tuyệt"},
		{"包裹", "bāoguǒ", "Bưu kiện"},
		{"包含", "bāohán", "Chứa đựng"},
		{"宝贝", "bǎobèi", "Bảo bối"},
		{"宝贵", "bǎoguì", "Quý giá"},
		{"保持", "bǎochí", "Duy trì"},
	},
	6: {
		{"挨", "ái", "Chịu đựng / Kề bên"},
		{"癌症", "áizhèng", "Ung thư"},
		{"爱不释手", "àibúshìshǒu", "Yêu không buông tay"},
		{"爱戴", "àidài", "Kính yêu"},
		{"暧昧", "àimèi", "Mập mờ"},
		{"安宁", "ānníng", "An ninh"},
		{"安详", "ānxiáng", "An tường, điềm tĩnh"},
		{"安置", "ānzhì", "Bố trí"},
		{"暗示", "ànshì", "Ám thị"},
		{"案件", "ànjiàn", "Vụ án"},
		{"昂贵", "ángguì", "Đắt đỏ"},
		{"凹凸", "āotū", "Lồi lõm"},
		{"巴结", "bājie", "Nịnh bợ"},
		{"拔苗助长", "bámiáozhùzhǎng", "Dục tốc bất đạt"},
		{"把关", "bǎguān", "Kiểm tra, rà soát"},
	},
	7: {
		{"博大精深", "bódàjīngshēn", "Uyên bác thâm sâu"},
		{"不可思议", "bùkěsīyì", "Không thể tưởng tượng nổi"},
		{"不屑一顾", "búxièyígù", "Không thèm để ý"},
		{"沧海桑田", "cānghǎisāngtián", "Bãi bể nương dâu"},
		{"草木皆兵", "cǎomùjiēbīng", "Thần hồn nát thần tính"},
	},
	8: {
		{"唇亡齿寒", "chúnwángchǐhán", "Môi hở răng lạnh"},
		{"打草惊蛇", "dǎcǎojīngshé", "Đánh rắn động cỏ"},
		{"大刀阔斧", "dàdāokuòfǔ", "Mạnh tay quyết liệt"},
		{"当仁不让", "dāngrénbúràng", "Đương nhiên không nhường"},
	},
	9: {
		{"得寸进尺", "décùnjìnchǐ", "Được đằng chân lân đằng đầu"},
		{"对牛弹琴", "duìniútánqín", "Đàn gảy tai trâu"},
		{"恩重如山", "ēnzhòngrúshān", "Ơn nặng tựa núi"},
		{"防患未然", "fánghuànwèirán", "Phòng bệnh hơn chữa bệnh"},
	},
}
